package matter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatter_Valid(t *testing.T) {
	m, err := NewMatter(1, "Smith v Jones", "LIT-2025-001", NewAccessScope(nil, nil))

	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, uint(0), m.ID(), "new matter should have zero ID")
	assert.True(t, strings.HasPrefix(m.SID(), "mat_"))
	assert.Equal(t, uint(1), m.FirmID())
	assert.Equal(t, "Smith v Jones", m.Title())
	assert.Equal(t, StatusOpen, m.Status())
	assert.WithinDuration(t, time.Now().UTC(), m.CreatedAt(), 2*time.Second)
}

func TestNewMatter_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		firmID uint
		title  string
	}{
		{"zero firm id", 0, "Smith v Jones"},
		{"empty title", 1, ""},
		{"title too long", 1, strings.Repeat("x", 256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatter(tt.firmID, tt.title, "", NewAccessScope(nil, nil))
			assert.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

func TestMatter_CanBeAccessedBy(t *testing.T) {
	restricted, err := NewMatter(1, "Confidential", "", NewAccessScope([]uint{4}, []string{"litigation"}))
	require.NoError(t, err)

	assert.True(t, restricted.CanBeAccessedBy(4, ""))
	assert.True(t, restricted.CanBeAccessedBy(11, "litigation"))
	assert.False(t, restricted.CanBeAccessedBy(11, "estates"))
}

func TestMatter_SetID(t *testing.T) {
	m, err := NewMatter(1, "Smith v Jones", "", NewAccessScope(nil, nil))
	require.NoError(t, err)

	require.NoError(t, m.SetID(42))
	assert.Equal(t, uint(42), m.ID())
	assert.Error(t, m.SetID(43), "ID must not be reassigned")
}

func TestMatter_Close(t *testing.T) {
	m, err := NewMatter(1, "Smith v Jones", "", NewAccessScope(nil, nil))
	require.NoError(t, err)

	require.NoError(t, m.Close())
	assert.Equal(t, StatusClosed, m.Status())
	assert.Error(t, m.Close(), "closing twice must fail")
}

func TestReconstructMatter_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructMatter(0, "mat_x", 1, "T", "", StatusOpen, NewAccessScope(nil, nil), now, now)
	assert.Error(t, err)

	_, err = ReconstructMatter(1, "", 1, "T", "", StatusOpen, NewAccessScope(nil, nil), now, now)
	assert.Error(t, err)

	_, err = ReconstructMatter(1, "mat_x", 1, "T", "", Status("bogus"), NewAccessScope(nil, nil), now, now)
	assert.Error(t, err)
}
