package store_test

import (
	"bytes"
	"testing"

	"github.com/CorvidLabs/ts-algochat/internal/store"
)

func TestFileKeyStore_StoreRetrieve_OK(t *testing.T) {
	dir := t.TempDir()
	ks := store.NewFileKeyStore(dir, "correct horse battery staple")

	address := "ALGOADDRXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX"
	key := bytes.Repeat([]byte{0x42}, 32)

	if err := ks.Store(address, key); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := ks.Retrieve(address)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if !bytes.Equal(got, key) {
		t.Fatalf("retrieved key mismatch")
	}
}

func TestFileKeyStore_WrongPassphraseFails(t *testing.T) {
	dir := t.TempDir()
	address := "ADDR1"

	writer := store.NewFileKeyStore(dir, "correct")
	if err := writer.Store(address, []byte("secret-key-bytes")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	reader := store.NewFileKeyStore(dir, "wrong")
	if _, err := reader.Retrieve(address); err == nil {
		t.Fatalf("expected error with wrong passphrase")
	}
}

func TestFileKeyStore_HasDeleteList(t *testing.T) {
	dir := t.TempDir()
	ks := store.NewFileKeyStore(dir, "pw")

	addrA, addrB := "AAAA", "BBBB"
	if err := ks.Store(addrA, []byte("key-a")); err != nil {
		t.Fatalf("Store A: %v", err)
	}
	if err := ks.Store(addrB, []byte("key-b")); err != nil {
		t.Fatalf("Store B: %v", err)
	}

	has, err := ks.Has(addrA)
	if err != nil || !has {
		t.Fatalf("expected Has(addrA)=true, got %v err=%v", has, err)
	}

	list, err := ks.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 stored addresses, got %d: %v", len(list), list)
	}

	if err := ks.Delete(addrA); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	has, err = ks.Has(addrA)
	if err != nil || has {
		t.Fatalf("expected Has(addrA)=false after delete, got %v err=%v", has, err)
	}
}

func TestFileKeyStore_RetrieveMissingAddressErrors(t *testing.T) {
	dir := t.TempDir()
	ks := store.NewFileKeyStore(dir, "pw")
	if _, err := ks.Retrieve("nonexistent"); err == nil {
		t.Fatalf("expected error retrieving a key that was never stored")
	}
}

func TestFileKeyStore_DeleteMissingAddressIsNoop(t *testing.T) {
	dir := t.TempDir()
	ks := store.NewFileKeyStore(dir, "pw")
	if err := ks.Delete("nonexistent"); err != nil {
		t.Fatalf("Delete of a missing address should be a no-op, got %v", err)
	}
}
