package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/alnah/go-larkreport/internal/suite"
)

func TestCheckPIN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pin     string
		wantErr error
	}{
		{pin: "2025"},
		{pin: "1234", wantErr: ErrWrongPIN},
		{pin: "202", wantErr: ErrPINFormat},
		{pin: "20255", wantErr: ErrPINFormat},
		{pin: "", wantErr: ErrPINFormat},
		{pin: "20a5", wantErr: ErrPINFormat},
		{pin: "٢٠٢٥", wantErr: ErrPINFormat},
	}

	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			t.Parallel()

			if err := CheckPIN(tt.pin); !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckPIN(%q) = %v, want %v", tt.pin, err, tt.wantErr)
			}
		})
	}
}

func TestStore_LoginLogout(t *testing.T) {
	t.Parallel()

	s := NewStore()
	id := s.Create()
	if s.Authenticated(id) {
		t.Fatal("new session should not be authenticated")
	}

	if _, err := s.Login(id, "1111"); !errors.Is(err, ErrWrongPIN) {
		t.Fatalf("Login(wrong) = %v, want ErrWrongPIN", err)
	}
	if s.Authenticated(id) {
		t.Fatal("wrong PIN must not authenticate")
	}

	got, err := s.Login(id, PIN)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got != id {
		t.Errorf("Login() id = %q, want existing %q", got, id)
	}
	if !s.Authenticated(id) {
		t.Error("session should be authenticated after login")
	}

	s.Logout(id)
	if s.Authenticated(id) {
		t.Error("session should not be authenticated after logout")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStore_LoginUnknownIDCreatesSession(t *testing.T) {
	t.Parallel()

	s := NewStore()
	id, err := s.Login("", PIN)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if id == "" || !s.Authenticated(id) {
		t.Errorf("Login(\"\") = %q, want a new authenticated session", id)
	}
}

func TestStore_Do(t *testing.T) {
	t.Parallel()

	s := NewStore()
	id := s.Create()

	err := s.Do(id, func(st *State) error {
		if st.ReportTab != suite.DefaultSection {
			t.Errorf("ReportTab = %q, want %q", st.ReportTab, suite.DefaultSection)
		}
		return st.Cart.Add("Flat White", 2, 16)
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	var total float64
	_ = s.Do(id, func(st *State) error {
		total = st.Cart.Total()
		return nil
	})
	if total != 32 {
		t.Errorf("cart total = %v, want 32", total)
	}

	if err := s.Do("missing", func(*State) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Do(missing) = %v, want ErrSessionNotFound", err)
	}
}

func TestStore_ConcurrentCartAdds(t *testing.T) {
	t.Parallel()

	s := NewStore()
	id := s.Create()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(id, func(st *State) error { return st.Cart.Add("Cold Brew", 1, 17) })
		}()
	}
	wg.Wait()

	_ = s.Do(id, func(st *State) error {
		if st.Cart.Len() != 50 {
			t.Errorf("cart lines = %d, want 50", st.Cart.Len())
		}
		return nil
	})
}
