// Package vlantag models the 802.1Q tag control information word: the
// 12-bit VLAN identifier, the drop eligible indicator and the 3-bit
// priority code point packed into one 16-bit scalar.
package vlantag

import (
	"github.com/vexingcodes/bitfield/pkg/field"
	"github.com/vexingcodes/bitfield/pkg/layout"
	"k8s.io/apimachinery/pkg/labels"
)

const (
	vidField = "vid"
	deiField = "dei"
	pcpField = "pcp"
)

var tci = func() layout.Layout[uint16] {
	l, err := layout.New[uint16](field.Config{Strategy: field.StrategyError}).
		AddLabeled(vidField, 12, labels.Set{"component": "vlan-id", "access": "rw"}).
		AddLabeled(deiField, 1, labels.Set{"component": "drop-eligible", "access": "rw"}).
		AddLabeled(pcpField, 3, labels.Set{"component": "priority", "access": "rw"}).
		Build()
	if err != nil {
		panic(err)
	}
	return l
}()

var (
	vid = mustField(vidField)
	dei = mustField(deiField)
	pcp = mustField(pcpField)
)

func mustField(name string) field.Field[uint16, uint16] {
	f, err := tci.Field(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Layout returns the tag control information layout, for span inspection
// and label queries.
func Layout() layout.Layout[uint16] {
	return tci
}

// FieldsByLabel returns the tag field names whose labels match the
// selector, in bit order.
func FieldsByLabel(selector labels.Selector) []string {
	return tci.ByLabel(selector)
}

// Tag is one tag control information word.
type Tag interface {
	VLANID() uint16
	SetVLANID(id uint16) error
	DropEligible() bool
	SetDropEligible(eligible bool) error
	Priority() uint8
	SetPriority(p uint8) error

	Raw() uint16
}

// New returns a zeroed tag: VLAN 0, not drop eligible, priority 0.
func New() Tag {
	return &tag{rec: tci.NewRecord()}
}

// From returns a tag wrapping the given raw word.
func From(raw uint16) Tag {
	return &tag{rec: tci.Wrap(raw)}
}

type tag struct {
	rec *layout.Record[uint16]
}

func (r *tag) VLANID() uint16 {
	return vid.Get(r.rec.Raw())
}

func (r *tag) SetVLANID(id uint16) error {
	_, err := r.rec.Set(vidField, id)
	return err
}

func (r *tag) DropEligible() bool {
	return dei.Get(r.rec.Raw()) != 0
}

func (r *tag) SetDropEligible(eligible bool) error {
	var v uint16
	if eligible {
		v = 1
	}
	_, err := r.rec.Set(deiField, v)
	return err
}

func (r *tag) Priority() uint8 {
	return uint8(pcp.Get(r.rec.Raw()))
}

func (r *tag) SetPriority(p uint8) error {
	_, err := r.rec.Set(pcpField, uint16(p))
	return err
}

func (r *tag) Raw() uint16 {
	return r.rec.Raw()
}
