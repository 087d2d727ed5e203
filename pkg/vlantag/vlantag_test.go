package vlantag

import (
	"errors"
	"testing"

	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/vexingcodes/bitfield/pkg/field"
)

func TestLayout(t *testing.T) {
	l := Layout()
	assert.True(t, l.IsComplete())
	assert.Equal(t, []string{"vid", "dei", "pcp"}, l.Names())

	vid, err := l.Field("vid")
	assert.NoError(t, err)
	assert.Equal(t, uint(0), vid.Offset())

	dei, err := l.Field("dei")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), dei.Offset())

	pcp, err := l.Field("pcp")
	assert.NoError(t, err)
	assert.Equal(t, uint(13), pcp.Offset())
}

func TestFrom(t *testing.T) {
	cases := map[string]struct {
		raw              uint16
		expectedVID      uint16
		expectedDEI      bool
		expectedPriority uint8
	}{
		"Zero": {raw: 0x0000},
		"VoicePriority": {
			raw:              0x600a,
			expectedVID:      10,
			expectedPriority: 3,
		},
		"DropEligibleMaxVID": {
			raw:         0x1fff,
			expectedVID: 4095,
			expectedDEI: true,
		},
		"AllOnes": {
			raw:              0xffff,
			expectedVID:      4095,
			expectedDEI:      true,
			expectedPriority: 7,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tag := From(tc.raw)
			assert.Equal(t, tc.expectedVID, tag.VLANID())
			assert.Equal(t, tc.expectedDEI, tag.DropEligible())
			assert.Equal(t, tc.expectedPriority, tag.Priority())
			assert.Equal(t, tc.raw, tag.Raw())
		})
	}
}

func TestSet(t *testing.T) {
	tag := New()
	assert.NoError(t, tag.SetVLANID(100))
	assert.NoError(t, tag.SetDropEligible(true))
	assert.NoError(t, tag.SetPriority(5))

	assert.Equal(t, uint16(0xb064), tag.Raw())
	assert.Equal(t, uint16(100), tag.VLANID())
	assert.True(t, tag.DropEligible())
	assert.Equal(t, uint8(5), tag.Priority())

	assert.NoError(t, tag.SetDropEligible(false))
	assert.False(t, tag.DropEligible())
	assert.Equal(t, uint16(0xa064), tag.Raw())
}

func TestSetInvalid(t *testing.T) {
	cases := map[string]struct {
		set func(tag Tag) error
	}{
		"VIDTooWide":      {set: func(tag Tag) error { return tag.SetVLANID(4096) }},
		"PriorityTooWide": {set: func(tag Tag) error { return tag.SetPriority(8) }},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tag := From(0x600a)
			err := tc.set(tag)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, field.ErrInvalidBits))
			assert.Equal(t, uint16(0x600a), tag.Raw())
		})
	}
}

func TestFieldsByLabel(t *testing.T) {
	sel, err := labels.Parse("access=rw")
	assert.NoError(t, err)
	assert.Equal(t, []string{"vid", "dei", "pcp"}, FieldsByLabel(sel))

	sel, err = labels.Parse("component=priority")
	assert.NoError(t, err)
	assert.Equal(t, []string{"pcp"}, FieldsByLabel(sel))
}
