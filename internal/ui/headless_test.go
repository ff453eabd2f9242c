package ui

import "testing"

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("ForceHeadless(true) should report headless")
	}

	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("ForceHeadless(false) should report interactive")
	}

	hm.ClearForce()
	if hm.forced != nil {
		t.Error("ClearForce should remove the override")
	}
}

func TestHeadlessManager_NonTTYIsHeadless(t *testing.T) {
	// An invalid descriptor is never a terminal.
	hm := &HeadlessManager{fd: ^uintptr(0)}
	if !hm.IsHeadless() {
		t.Error("non-terminal descriptor should be headless")
	}
}
