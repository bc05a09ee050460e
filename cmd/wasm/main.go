//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-toy-ecdsa/internal/crypto/curve"
	"github.com/smallyu/go-toy-ecdsa/pkg/ecdsa"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go Toy ECDSA WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoToyECDSA", map[string]interface{}{
		"GenKey": js.FuncOf(GenKey),
		"Sign":   js.FuncOf(Sign),
		"Verify": js.FuncOf(Verify),
	})

	<-c
}

// curveInput is the JSON shape shared by all three entry points. All
// integers are base-10 strings so JS callers are not limited by
// float64 precision.
type curveInput struct {
	P  string `json:"p"`
	N  string `json:"n"`
	Gx string `json:"gx"`
	Gy string `json:"gy"`

	D    string `json:"d,omitempty"`
	H    string `json:"h,omitempty"`
	Qx   string `json:"qx,omitempty"`
	Qy   string `json:"qy,omitempty"`
	R    string `json:"r,omitempty"`
	S    string `json:"s,omitempty"`
	Seed int64  `json:"seed,omitempty"`
}

func parseCurve(in *curveInput) (*curve.Params, error) {
	vals := make([]*big.Int, 4)
	for i, s := range []string{in.P, in.N, in.Gx, in.Gy} {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not a base-10 integer", s)
		}
		vals[i] = v
	}
	return curve.KoblitzParams(vals[0], vals[1], vals[2], vals[3]), nil
}

func parseInt(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("field %s: %q is not a base-10 integer", name, s)
	}
	return v, nil
}

func decodeInput(args []js.Value) (*curveInput, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument (jsonParams)")
	}
	var in curveInput
	if err := json.Unmarshal([]byte(args[0].String()), &in); err != nil {
		return nil, fmt.Errorf("invalid json: %v", err)
	}
	return &in, nil
}

func (in *curveInput) source() ecdsa.ScalarSource {
	if in.Seed != 0 {
		return ecdsa.NewMathRandSource(in.Seed)
	}
	return ecdsa.NewTimeSeededSource()
}

// GenKey generates a key pair.
// Arguments:
// 0: JSON string {p, n, gx, gy, seed?}
// Returns:
// JSON string {d, qx, qy} or "error: ..."
func GenKey(this js.Value, args []js.Value) interface{} {
	in, err := decodeInput(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	c, err := parseCurve(in)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	kp, err := ecdsa.GenerateKey(c, in.source())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	respBytes, _ := json.Marshal(map[string]string{
		"d":  kp.D.String(),
		"qx": kp.Q.X.String(),
		"qy": kp.Q.Y.String(),
	})
	return string(respBytes)
}

// Sign signs a hash value.
// Arguments:
// 0: JSON string {p, n, gx, gy, d, h, seed?}
// Returns:
// JSON string {r, s} or "error: ..."
func Sign(this js.Value, args []js.Value) interface{} {
	in, err := decodeInput(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	c, err := parseCurve(in)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	d, err := parseInt("d", in.D)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	h, err := parseInt("h", in.H)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := ecdsa.Sign(c, d, h, in.source())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	respBytes, _ := json.Marshal(map[string]string{
		"r": sig.R.String(),
		"s": sig.S.String(),
	})
	return string(respBytes)
}

// Verify checks a signature.
// Arguments:
// 0: JSON string {p, n, gx, gy, qx, qy, r, s, h}
// Returns:
// bool or "error: ..."
func Verify(this js.Value, args []js.Value) interface{} {
	in, err := decodeInput(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	c, err := parseCurve(in)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	fields := map[string]string{"qx": in.Qx, "qy": in.Qy, "r": in.R, "s": in.S, "h": in.H}
	vals := make(map[string]*big.Int, len(fields))
	for name, s := range fields {
		v, err := parseInt(name, s)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		vals[name] = v
	}

	Q := curve.NewPoint(vals["qx"], vals["qy"])
	sig := &ecdsa.Signature{R: vals["r"], S: vals["s"]}
	return ecdsa.Verify(c, Q, sig, vals["h"])
}
