package notify

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
)

type mockSender struct {
	mu    sync.Mutex
	urls  []string
	msgs  []string
	fails map[string]bool
}

func (m *mockSender) Send(url, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, url)
	m.msgs = append(m.msgs, message)
	if m.fails[url] {
		return errors.New("mock send error")
	}
	return nil
}

func TestNotifier_FansOut(t *testing.T) {
	s := &mockSender{}
	n := New([]string{"generic://a.example", "logger://"}, s)
	if err := n.Notify("hello"); err != nil {
		t.Fatal(err)
	}
	if len(s.urls) != 2 || s.msgs[1] != "hello" {
		t.Errorf("sent to %v: %v", s.urls, s.msgs)
	}
}

func TestNotifier_JoinsErrors(t *testing.T) {
	s := &mockSender{fails: map[string]bool{"telegram://token@telegram?chats=1": true}}
	n := New([]string{"telegram://token@telegram?chats=1", "logger://"}, s)
	err := n.Notify("x")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "token") {
		t.Errorf("error leaks url credentials: %v", err)
	}
	if len(s.urls) != 2 {
		t.Errorf("a failing url must not stop the others: %v", s.urls)
	}
}

func TestNotifier_Disabled(t *testing.T) {
	var n *Notifier
	if n.Enabled() || n.Notify("x") != nil {
		t.Error("nil notifier should be a no-op")
	}
	s := &mockSender{}
	if err := New(nil, s).Notify("x"); err != nil || len(s.urls) != 0 {
		t.Errorf("empty notifier sent %v, err %v", s.urls, err)
	}
}

func TestAutoFailMessage(t *testing.T) {
	cfg := prelim.ExcusedConfig()
	res := prelim.Result{TotalClassesThatCount: 5, UnexcusedAbsences: 4, AutoFailed: true}
	got := AutoFailMessage(res, cfg)
	want := "Prelim auto-fail (excused): 4 unexcused absences of 5 classes held, threshold 4."
	if got != want {
		t.Errorf("got %q", got)
	}
}
