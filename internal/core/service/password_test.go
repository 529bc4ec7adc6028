package service

import "testing"

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(testCost)

	for _, pw := range []string{"hunter2", "", "päss wörd with spaces", "0123456789012345678901234567890123456789"} {
		hash, err := h.Hash(pw)
		if err != nil {
			t.Fatalf("hash %q: %v", pw, err)
		}
		if hash == pw {
			t.Fatalf("hash equals plaintext for %q", pw)
		}
		if !h.Verify(pw, hash) {
			t.Fatalf("verify failed for %q", pw)
		}
		if h.Verify(pw+"x", hash) {
			t.Fatalf("verify accepted wrong password for %q", pw)
		}
	}
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(testCost)

	a, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical; salt missing")
	}
}

func TestNewPasswordHasher_CostClamped(t *testing.T) {
	// Out-of-range costs fall back to the default rather than erroring at
	// hash time.
	for _, cost := range []int{-1, 0, 3, 32, 100} {
		h := NewPasswordHasher(cost)
		hash, err := h.Hash("pw")
		if err != nil {
			t.Fatalf("cost %d: %v", cost, err)
		}
		if !h.Verify("pw", hash) {
			t.Fatalf("cost %d: verify failed", cost)
		}
	}
}
