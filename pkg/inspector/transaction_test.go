package inspector

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rateleg/swap-contract/pkg/bitcoin"
)

func testAddress(t *testing.T, seed string) bitcoin.Address {
	t.Helper()

	pkh := bitcoin.Hash160([]byte(seed))
	address, err := bitcoin.NewAddressPKH(pkh, bitcoin.TestNet)
	if err != nil {
		t.Fatal(err)
	}
	return address
}

func TestTransactionJSON(t *testing.T) {
	itx := &Transaction{
		Inputs: []Input{
			{Address: testAddress(t, "fixed"), Index: 0, Value: 100000},
			{Address: testAddress(t, "float"), Index: 1, Value: 100000},
		},
		Outputs: []Output{
			{Address: testAddress(t, "fixed"), Index: 0, Value: 100000},
			{Address: testAddress(t, "float"), Index: 1, Value: 100000},
		},
	}

	b, err := json.Marshal(itx)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := NewTransactionFromJSON(b)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(itx, parsed, cmp.Comparer(func(a, b bitcoin.Address) bool {
		return a.Equal(b)
	})); diff != "" {
		t.Errorf("Transaction round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestIsSignedBy(t *testing.T) {
	address := testAddress(t, "fixed")
	other := testAddress(t, "float")

	input := Input{Address: address, Value: 100000}

	if !input.IsSignedBy(address.PKH()) {
		t.Errorf("Input should be signed by its address identity")
	}
	if input.IsSignedBy(other.PKH()) {
		t.Errorf("Input should not be signed by a different identity")
	}
}

func TestValues(t *testing.T) {
	itx := &Transaction{
		Inputs: []Input{
			{Address: testAddress(t, "fixed"), Value: 100000},
			{Address: testAddress(t, "float"), Value: 100000},
		},
		Outputs: []Output{
			{Address: testAddress(t, "fixed"), Value: 60000},
			{Address: testAddress(t, "float"), Value: 140000},
		},
	}

	if got := itx.InputsValue(); got != 200000 {
		t.Errorf("InputsValue: got %d, want %d", got, 200000)
	}
	if got := itx.OutputsValue(); got != 200000 {
		t.Errorf("OutputsValue: got %d, want %d", got, 200000)
	}

	if !itx.PaysTo(testAddress(t, "float").PKH()) {
		t.Errorf("PaysTo should find the float leg output")
	}
	if itx.PaysTo(testAddress(t, "stranger").PKH()) {
		t.Errorf("PaysTo found an identity with no output")
	}
}
