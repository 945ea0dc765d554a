package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// unfoldedFaceWire mirrors UnfoldedFace but with x/y/angle_deg swapped for
// json.RawMessage, letting MarshalJSON/UnmarshalJSON control their exact
// textual form (six fractional digits, fixed-point — encoding/json's
// default float64 formatting trims trailing zeros and can fall back to
// exponent notation, neither of which the wire format allows).
type unfoldedFaceWire struct {
	FaceID   int             `json:"face_id"`
	Gon      int             `json:"gon"`
	EdgeID   int             `json:"edge_id"`
	X        json.RawMessage `json:"x"`
	Y        json.RawMessage `json:"y"`
	AngleDeg json.RawMessage `json:"angle_deg"`
}

// fixed6 renders v as fixed-point text with exactly six fractional digits,
// rounding half-away-from-zero first: strconv.FormatFloat's own rounding
// at the sixth digit is round-half-to-even, which is not the rule this
// format promises, so Round6 decides the digit before FormatFloat ever
// sees it.
func fixed6(v float64) json.RawMessage {
	return json.RawMessage(strconv.FormatFloat(Round6(v), 'f', 6, 64))
}

// MarshalJSON renders x, y, and angle_deg as fixed-point text with exactly
// six fractional digits.
func (f UnfoldedFace) MarshalJSON() ([]byte, error) {
	return json.Marshal(unfoldedFaceWire{
		FaceID:   f.FaceID,
		Gon:      f.Gon,
		EdgeID:   f.EdgeID,
		X:        fixed6(f.X),
		Y:        fixed6(f.Y),
		AngleDeg: fixed6(f.AngleDeg),
	})
}

// UnmarshalJSON accepts either the fixed-point wire form or a plain JSON
// number (so records produced by other tooling still parse).
func (f *UnfoldedFace) UnmarshalJSON(data []byte) error {
	var w unfoldedFaceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("unfolded face: %w", err)
	}

	x, err := parseFloatField("x", w.X)
	if err != nil {
		return err
	}
	y, err := parseFloatField("y", w.Y)
	if err != nil {
		return err
	}
	angle, err := parseFloatField("angle_deg", w.AngleDeg)
	if err != nil {
		return err
	}

	f.FaceID = w.FaceID
	f.Gon = w.Gon
	f.EdgeID = w.EdgeID
	f.X = x
	f.Y = y
	f.AngleDeg = angle
	return nil
}

func parseFloatField(name string, raw json.RawMessage) (float64, error) {
	s := bytes.Trim(raw, `"`)
	v, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0, fmt.Errorf("unfolded face: field %s: %w", name, err)
	}
	return v, nil
}
