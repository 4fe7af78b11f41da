package common

import "testing"

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("s3cr3t")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestWipeByteArray_SubsliceOnly(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	WipeByteArray(buf[1:3])
	if buf[0] != 1 || buf[1] != 0 || buf[2] != 0 || buf[3] != 4 {
		t.Fatalf("unexpected buffer %v", buf)
	}
}
