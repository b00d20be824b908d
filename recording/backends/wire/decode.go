package wire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gogpu/koch"
)

// Segment is a decoded segment together with the index of the snowflake
// it belongs to.
type Segment struct {
	koch.Segment
	Shape int
}

// Decode parses a Drawing message. Unknown fields are skipped.
func Decode(data []byte) ([]Segment, error) {
	var out []Segment
	err := eachField(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != fieldDrawingSegments || typ != protowire.BytesType {
			return skip(num, typ, b)
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		seg, err := decodeSegment(v)
		if err != nil {
			return 0, err
		}
		out = append(out, seg)
		return n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("wire: decode drawing: %w", err)
	}
	return out, nil
}

func decodeSegment(data []byte) (Segment, error) {
	var seg Segment
	err := eachField(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case (num == fieldSegmentA || num == fieldSegmentB) && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			p, err := decodePoint(v)
			if err != nil {
				return 0, err
			}
			if num == fieldSegmentA {
				seg.A = p
			} else {
				seg.B = p
			}
			return n, nil
		case num == fieldSegmentShape && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			seg.Shape = int(v)
			return n, nil
		}
		return skip(num, typ, b)
	})
	return seg, err
}

func decodePoint(data []byte) (koch.Point, error) {
	var p koch.Point
	err := eachField(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.Fixed64Type || num < fieldPointX || num > fieldPointZ {
			return skip(num, typ, b)
		}
		v, n := protowire.ConsumeFixed64(b)
		f := math.Float64frombits(v)
		switch num {
		case fieldPointX:
			p.X = f
		case fieldPointY:
			p.Y = f
		case fieldPointZ:
			p.Z = f
		}
		return n, nil
	})
	return p, err
}

// eachField walks the fields of one message. fn consumes the field value
// from b and returns how many bytes it used, or a negative protowire
// error code.
func eachField(data []byte, fn func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		m, err := fn(num, typ, data)
		if err != nil {
			return err
		}
		if m < 0 {
			return protowire.ParseError(m)
		}
		data = data[m:]
	}
	return nil
}

func skip(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	return protowire.ConsumeFieldValue(num, typ, b), nil
}
