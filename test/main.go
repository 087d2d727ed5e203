package main

import (
	"fmt"

	"github.com/vexingcodes/bitfield/pkg/field"
	"github.com/vexingcodes/bitfield/pkg/layout"
	"github.com/vexingcodes/bitfield/pkg/vlantag"
	"k8s.io/apimachinery/pkg/labels"
)

func main() {
	l, err := layout.New[uint32]().
		Add("field1", 5).
		Add("field2", 2, field.Config{Offset: field.Keep()}).
		Pad(22).
		Add("field3", 3).
		Build()
	if err != nil {
		panic(err)
	}
	fmt.Println("complete:", l.IsComplete())

	rec := l.Wrap(0b11100000_00000000_00000000_01111111)
	for _, name := range l.Names() {
		fld, _ := l.Field(name)
		v, _ := rec.Get(name)
		fmt.Printf("%-6s %s = %#x\n", name, fld.Span(), v)
	}

	f2, _ := l.Field("field2")
	fmt.Printf("field2 as byte, unshifted: %#010b\n", field.As[uint8](f2).Get(rec.Raw()))

	out := l.NewRecord()
	if _, err := out.Set("field1", 31); err != nil {
		panic(err)
	}
	if _, err := out.Set("field2", 0b0110_0000, field.SetKeep()); err != nil {
		panic(err)
	}
	if _, err := out.Set("field3", 0b111); err != nil {
		panic(err)
	}
	fmt.Printf("rebuilt: %#034b\n", out.Raw())

	tag := vlantag.From(0x600A)
	fmt.Printf("vlan %d, dei %v, priority %d\n", tag.VLANID(), tag.DropEligible(), tag.Priority())

	sel, _ := labels.Parse("access=rw")
	fmt.Println("rw fields:", vlantag.FieldsByLabel(sel))
}
