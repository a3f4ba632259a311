// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestHasher_HashMatchesHMAC(t *testing.T) {
	key := "secret-key"
	h := NewHasher(key)

	data := []byte("test-data")
	sum1 := h.Hash(data)
	sum2 := h.Hash(data)

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	expected := mac.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	a := NewHasher("a").Hash([]byte("x"))
	b := NewHasher("b").Hash([]byte("x"))
	if bytes.Equal(a, b) {
		t.Fatal("different keys must give different digests")
	}
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher("k")
	body := []byte(`{"ids":[]}`)
	digest := h.HashHex(body)

	if !h.Verify(body, digest) {
		t.Error("expected digest to verify")
	}
	if h.Verify([]byte("tampered"), digest) {
		t.Error("tampered body must not verify")
	}
	if h.Verify(body, "not-hex") {
		t.Error("non-hex digest must not verify")
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher("k")
	want := h.HashHex([]byte("payload"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.HashHex([]byte("payload")); got != want {
				t.Errorf("concurrent hash mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestHashString(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write([]byte("data"))
	expected := hex.EncodeToString(mac.Sum(nil))

	if got := HashString("data", "key"); got != expected {
		t.Fatalf("want %s, got %s", expected, got)
	}
}
