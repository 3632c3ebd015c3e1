package testutils

import (
	"strconv"
	"sync/atomic"

	"github.com/yinpa-bot/yinpa/internal/pkg/idgen"
)

// SequentialIDs returns a Generator yielding prefix_1, prefix_2, ...
func SequentialIDs(prefix string) idgen.Generator {
	var n atomic.Int64
	return idgen.Func(func() string {
		return prefix + "_" + strconv.FormatInt(n.Add(1), 10)
	})
}
