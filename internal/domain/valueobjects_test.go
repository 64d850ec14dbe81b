package domain

import (
	"testing"

	"github.com/yungbote/studypass-backend/internal/notifications"
)

func keysOf(n notifications.Notifiable) []string {
	var out []string
	for _, item := range n.Notifications() {
		out = append(out, item.Key)
	}
	return out
}

func containsKey(n notifications.Notifiable, key string) bool {
	for _, item := range n.Notifications() {
		if item.Key == key {
			return true
		}
	}
	return false
}

func TestNewName(t *testing.T) {
	cases := []struct {
		name      string
		first     string
		last      string
		wantValid bool
		wantKey   string
	}{
		{name: "valid", first: "Ana", last: "Silva", wantValid: true},
		{name: "empty_first", first: "", last: "Silva", wantValid: false, wantKey: "Name.FirstName"},
		{name: "empty_last", first: "Ana", last: "", wantValid: false, wantKey: "Name.LastName"},
		{name: "short_first", first: "An", last: "Silva", wantValid: false, wantKey: "Name.FirstName"},
		{name: "whitespace_first", first: "   ", last: "Silva", wantValid: false, wantKey: "Name.FirstName"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := NewName(tc.first, tc.last)
			if n.IsValid() != tc.wantValid {
				t.Fatalf("IsValid()=%v, want %v (notifications=%v)", n.IsValid(), tc.wantValid, n.Notifications())
			}
			if tc.wantValid && len(n.Notifications()) != 0 {
				t.Fatalf("valid name carries notifications: %v", n.Notifications())
			}
			if !tc.wantValid && !containsKey(n, tc.wantKey) {
				t.Fatalf("missing key %q in %v", tc.wantKey, keysOf(n))
			}
		})
	}
}

func TestNameString(t *testing.T) {
	n := NewName("Ana", "Silva")
	if got := n.String(); got != "Ana Silva" {
		t.Fatalf("String()=%q, want %q", got, "Ana Silva")
	}
}

func TestNewDocument(t *testing.T) {
	cases := []struct {
		name      string
		number    string
		docType   DocumentType
		wantValid bool
		wantKey   string
	}{
		{name: "valid_cpf", number: "35111234567", docType: DocumentCPF, wantValid: true},
		{name: "valid_cpf_formatted", number: "351.112.345-67", docType: DocumentCPF, wantValid: true},
		{name: "valid_cnpj", number: "12345678000190", docType: DocumentCNPJ, wantValid: true},
		{name: "empty_number", number: "", docType: DocumentCPF, wantValid: false, wantKey: "Document.Number"},
		{name: "cpf_wrong_length", number: "123", docType: DocumentCPF, wantValid: false, wantKey: "Document.Number"},
		{name: "cnpj_wrong_length", number: "123", docType: DocumentCNPJ, wantValid: false, wantKey: "Document.Number"},
		{name: "bad_type", number: "35111234567", docType: DocumentType("RG"), wantValid: false, wantKey: "Document.Type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDocument(tc.number, tc.docType)
			if d.IsValid() != tc.wantValid {
				t.Fatalf("IsValid()=%v, want %v (notifications=%v)", d.IsValid(), tc.wantValid, d.Notifications())
			}
			if !tc.wantValid && !containsKey(d, tc.wantKey) {
				t.Fatalf("missing key %q in %v", tc.wantKey, keysOf(d))
			}
		})
	}
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name      string
		address   string
		wantValid bool
	}{
		{name: "valid", address: "ana.silva@example.com", wantValid: true},
		{name: "empty", address: "", wantValid: false},
		{name: "missing_at", address: "ana.example.com", wantValid: false},
		{name: "missing_domain", address: "ana@", wantValid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEmail(tc.address)
			if e.IsValid() != tc.wantValid {
				t.Fatalf("IsValid()=%v, want %v (notifications=%v)", e.IsValid(), tc.wantValid, e.Notifications())
			}
			if !tc.wantValid && !containsKey(e, "Email") {
				t.Fatalf("missing Email key in %v", keysOf(e))
			}
		})
	}
}

func TestNewAddressCollectsAllMissingFields(t *testing.T) {
	a := NewAddress("", "", "", "", "", "", "")
	if a.IsValid() {
		t.Fatalf("empty address reported valid")
	}
	wantKeys := []string{
		"Address.Street", "Address.Number", "Address.Neighborhood",
		"Address.City", "Address.State", "Address.Country", "Address.ZipCode",
	}
	got := a.Notifications()
	if len(got) != len(wantKeys) {
		t.Fatalf("got %d notifications, want %d: %v", len(got), len(wantKeys), keysOf(a))
	}
	for i, key := range wantKeys {
		if got[i].Key != key {
			t.Fatalf("item %d key=%q, want %q", i, got[i].Key, key)
		}
	}
}

func TestNewAddressValid(t *testing.T) {
	a := NewAddress("Rua das Flores", "100", "Centro", "São Paulo", "SP", "Brasil", "01000-000")
	if !a.IsValid() {
		t.Fatalf("valid address reported invalid: %v", a.Notifications())
	}
}

func TestValueObjectEquality(t *testing.T) {
	if !NewName("Ana", "Silva").Equal(NewName("Ana", "Silva")) {
		t.Fatalf("equal names compared unequal")
	}
	if NewName("Ana", "Silva").Equal(NewName("Bia", "Silva")) {
		t.Fatalf("different names compared equal")
	}
	if !NewEmail("a@b.co").Equal(NewEmail("a@b.co")) {
		t.Fatalf("equal emails compared unequal")
	}
	if !NewDocument("35111234567", DocumentCPF).Equal(NewDocument("35111234567", DocumentCPF)) {
		t.Fatalf("equal documents compared unequal")
	}
}

func TestValidationIsIdempotent(t *testing.T) {
	first := NewName("", "Silva")
	second := NewName("", "Silva")

	a, b := first.Notifications(), second.Notifications()
	if len(a) != len(b) {
		t.Fatalf("notification counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("item %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
