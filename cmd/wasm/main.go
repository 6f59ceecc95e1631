//go:build js && wasm

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/keyenc"
	"github.com/smallyu/go-weierstrass/pkg/keys"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("go-weierstrass WASM initialized")

	// Expose Go functions to JS
	js.Global().Set("GoWeierstrass", map[string]interface{}{
		"Curves":   js.FuncOf(Curves),
		"Generate": js.FuncOf(Generate),
	})

	<-c
}

// Curves returns a JSON array with the names of the built-in curves.
func Curves(this js.Value, args []js.Value) interface{} {
	b, _ := json.Marshal(keys.CurveNames())
	return string(b)
}

// keyPairDTO carries key material as strings; JS numbers cannot hold 256-bit
// integers.
type keyPairDTO struct {
	Curve      string `json:"curve"`
	OID        string `json:"oid"`
	ByteOrder  string `json:"byteOrder"`
	Private    string `json:"private"`
	PublicX    string `json:"publicX"`
	PublicY    string `json:"publicY"`
	PrivatePEM string `json:"privatePEM,omitempty"`
	PublicPEM  string `json:"publicPEM,omitempty"`
}

// Generate creates a key pair.
// Arguments:
// 0: curve name (optional, defaults to secp256k1)
// 1: byte order, "big" or "little" (optional)
// Returns:
// JSON string of the key pair or an "error: ..." string
func Generate(this js.Value, args []js.Value) interface{} {
	name, order := "secp256k1", "big"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		name = args[0].String()
	}
	if len(args) > 1 && args[1].Type() == js.TypeString {
		order = args[1].String()
	}

	curve, err := keys.CurveByName(name)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	bo, err := config.ParseByteOrder(order)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	kp, err := keys.Generate(curve, rand.Reader)
	if err != nil {
		return fmt.Sprintf("error: generate failed: %v", err)
	}

	m := kp.Buffers(bo)
	dto := keyPairDTO{
		Curve:     curve.Name(),
		OID:       m.OID,
		ByteOrder: bo.String(),
		Private:   hex.EncodeToString(m.Private),
		PublicX:   hex.EncodeToString(m.PublicX),
		PublicY:   hex.EncodeToString(m.PublicY),
	}
	if bo == keys.BigEndian {
		priv, err := keyenc.PrivateKeyToPEM(m)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		pub, err := keyenc.PublicKeyToPEM(m)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		dto.PrivatePEM, dto.PublicPEM = string(priv), string(pub)
	}

	b, err := json.Marshal(dto)
	if err != nil {
		return fmt.Sprintf("error: marshal result failed: %v", err)
	}
	return string(b)
}
