package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinpa-bot/yinpa/internal/pkg/idgen"
)

func TestTimeOrdered(t *testing.T) {
	g := idgen.TimeOrdered("act")

	first := g.Generate()
	second := g.Generate()
	require.True(t, strings.HasPrefix(first, "act_"))

	id, err := uuid.Parse(strings.TrimPrefix(first, "act_"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Less(t, first, second)
}

func TestTimeOrdered_NoPrefix(t *testing.T) {
	_, err := uuid.Parse(idgen.TimeOrdered("").Generate())
	assert.NoError(t, err)
}

func TestFunc(t *testing.T) {
	var g idgen.Generator = idgen.Func(func() string { return "fixed" })
	assert.Equal(t, "fixed", g.Generate())
}
