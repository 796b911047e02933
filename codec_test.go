package fixnum

import (
	"bytes"
	"encoding"
	"errors"
	"math"
	"testing"
)

func TestAmount_BinaryInterfaces(t *testing.T) {
	var i any = Amount{}
	if _, ok := i.(encoding.BinaryMarshaler); !ok {
		t.Errorf("%T does not implement encoding.BinaryMarshaler", i)
	}
	i = &Amount{}
	if _, ok := i.(encoding.BinaryUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.BinaryUnmarshaler", i)
	}
}

func TestAmount_Encode(t *testing.T) {
	tests := []struct {
		a    Amount
		want []byte
	}{
		{Amount{}, []byte{0x00, 0x00, 0x00, 0x00, 0x00}},
		{MustNewAmount(1, 0), []byte{0x00, 0x00, 0x00, 0x00, 0x01}},
		{MustNewAmount(123456, 13), []byte{0x0d, 0x00, 0x01, 0xe2, 0x40}},
		{MustNewAmount(1, 17), []byte{0x11, 0x00, 0x00, 0x00, 0x01}},
		{MustNewAmount(math.MaxUint32, math.MaxUint8), []byte{0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		got := tt.a.Encode()
		if len(got) != EncodedLen {
			t.Errorf("len(%v.Encode()) = %v, want %v", tt.a, len(got), EncodedLen)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("%v.Encode() = %x, want %x", tt.a, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			data []byte
			want Amount
		}{
			{[]byte{0x00, 0x00, 0x00, 0x00, 0x00}, Amount{}},
			{[]byte{0x0d, 0x00, 0x01, 0xe2, 0x40}, MustNewAmount(123456, 13)},
			{[]byte{0xff, 0xff, 0xff, 0xff, 0xff}, MustNewAmount(math.MaxUint32, math.MaxUint8)},
			// Trailing bytes are ignored
			{[]byte{0x11, 0x00, 0x00, 0x00, 0x01, 0xaa}, MustNewAmount(1, 17)},
			{[]byte{0x11, 0x00, 0x00, 0x00, 0x01, 0x0d, 0x00, 0x01, 0xe2, 0x40}, MustNewAmount(1, 17)},
		}
		for _, tt := range tests {
			got, err := Decode(tt.data)
			if err != nil {
				t.Errorf("Decode(%x) failed: %v", tt.data, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Decode(%x) = %v, want %v", tt.data, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]byte{
			"nil":           nil,
			"empty":         {},
			"short 1":       {0x00},
			"short 4":       {0x00, 0x00, 0x00, 0x01},
			"zero exponent": {0x01, 0x00, 0x00, 0x00, 0x00},
			"zero 0a":       {0x0a, 0x00, 0x00, 0x00, 0x00},
			"trailing 10":   {0x00, 0x00, 0x00, 0x00, 0x0a},
			"trailing 1000": {0x05, 0x00, 0x00, 0x03, 0xe8},
		}
		for name, data := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Decode(data)
				if !errors.Is(err, ErrDecode) {
					t.Errorf("Decode(%x) error = %v, want %v", data, err, ErrDecode)
				}
			})
		}
	})
}

func TestDecode_Packed(t *testing.T) {
	want := []Amount{
		MustNewAmount(123456, 13),
		Amount{},
		MustNewAmount(1, 17),
	}
	var data []byte
	for _, a := range want {
		data, _ = a.AppendBinary(data)
	}
	if len(data) != len(want)*EncodedLen {
		t.Fatalf("len(data) = %v, want %v", len(data), len(want)*EncodedLen)
	}
	for i := range want {
		got, err := Decode(data[i*EncodedLen:])
		if err != nil {
			t.Errorf("Decode(data[%v:]) failed: %v", i*EncodedLen, err)
			continue
		}
		if got != want[i] {
			t.Errorf("Decode(data[%v:]) = %v, want %v", i*EncodedLen, got, want[i])
		}
	}
}

func TestAmount_UnmarshalBinary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		want := MustNewAmount(123456, 13)
		data, err := want.MarshalBinary()
		if err != nil {
			t.Fatalf("%v.MarshalBinary() failed: %v", want, err)
		}
		var got Amount
		err = got.UnmarshalBinary(data)
		if err != nil {
			t.Fatalf("UnmarshalBinary(%x) failed: %v", data, err)
		}
		if got != want {
			t.Errorf("UnmarshalBinary(%x) = %v, want %v", data, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]byte{
			"short":         {0x00, 0x00, 0x00, 0x01},
			"long":          {0x00, 0x00, 0x00, 0x00, 0x01, 0x00},
			"non-canonical": {0x00, 0x00, 0x00, 0x00, 0x0a},
		}
		for name, data := range tests {
			t.Run(name, func(t *testing.T) {
				var a Amount
				err := a.UnmarshalBinary(data)
				if !errors.Is(err, ErrDecode) {
					t.Errorf("UnmarshalBinary(%x) error = %v, want %v", data, err, ErrDecode)
				}
			})
		}
	})
}

func TestAmount_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		want := MustNewAmount(1, 17)
		value, err := want.Value()
		if err != nil {
			t.Fatalf("%v.Value() failed: %v", want, err)
		}
		var got Amount
		err = got.Scan(value)
		if err != nil {
			t.Fatalf("Scan(%v) failed: %v", value, err)
		}
		if got != want {
			t.Errorf("Scan(%v) = %v, want %v", value, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]any{
			"nil":    nil,
			"string": "1e17",
			"int":    int64(1),
			"short":  []byte{0x00},
		}
		for name, value := range tests {
			t.Run(name, func(t *testing.T) {
				var a Amount
				err := a.Scan(value)
				if err == nil {
					t.Errorf("Scan(%v) did not fail", value)
				}
			})
		}
	})
}
