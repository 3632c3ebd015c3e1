package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
)

func TestRecipients(t *testing.T) {
	self := &entities.User{ID: 1}
	other := &entities.User{ID: 2}

	testCases := []struct {
		name     string
		scope    catalog.Scope
		other    *entities.User
		targeted bool
		want     []*entities.User
	}{
		{name: "self ignores target", scope: catalog.ScopeSelf, other: other, targeted: true, want: []*entities.User{self}},
		{name: "target", scope: catalog.ScopeTarget, other: other, targeted: true, want: []*entities.User{other}},
		{name: "target is self", scope: catalog.ScopeTarget, targeted: true, want: []*entities.User{self}},
		{name: "both with target", scope: catalog.ScopeBoth, other: other, targeted: true, want: []*entities.User{other, self}},
		{name: "both without target", scope: catalog.ScopeBoth, want: []*entities.User{self}},
		{name: "both on self applies once", scope: catalog.ScopeBoth, targeted: true, want: []*entities.User{self}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, recipients(tc.scope, self, tc.other, tc.targeted))
		})
	}
}
