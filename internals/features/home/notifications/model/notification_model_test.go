package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetScopeValid(t *testing.T) {
	for _, s := range []TargetScope{TargetScopeAll, TargetScopeBuilding, TargetScopeRoom, TargetScopeIndividual} {
		assert.True(t, s.Valid(), "scope %s", s)
	}
	assert.False(t, TargetScope("FLOOR").Valid())
}

func TestTargetScopeNeedsRecipients(t *testing.T) {
	assert.False(t, TargetScopeAll.NeedsRecipients())
	assert.True(t, TargetScopeBuilding.NeedsRecipients())
	assert.True(t, TargetScopeRoom.NeedsRecipients())
	assert.True(t, TargetScopeIndividual.NeedsRecipients())
}

func TestTargetScopeReadRowsPrecreated(t *testing.T) {
	// only INDIVIDUAL pre-creates read rows at fan-out; the other scopes get
	// theirs lazily on the first mark-read
	assert.True(t, TargetScopeIndividual.ReadRowsPrecreated())
	assert.False(t, TargetScopeAll.ReadRowsPrecreated())
	assert.False(t, TargetScopeRoom.ReadRowsPrecreated())
	assert.False(t, TargetScopeBuilding.ReadRowsPrecreated())
}
