// Package notify sends short text alerts through Shoutrrr service URLs.
package notify

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nicholas-fedor/shoutrrr"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
)

// Sender abstracts message dispatch so callers can be tested without hitting
// real services.
type Sender interface {
	Send(shoutrrrURL, message string) error
}

// ShoutrrrSender dispatches via the Shoutrrr library.
type ShoutrrrSender struct{}

func (ShoutrrrSender) Send(url, message string) error {
	return shoutrrr.Send(url, message)
}

// Notifier fans a message out to every configured URL. A nil Notifier, or one
// without URLs, drops messages.
type Notifier struct {
	urls   []string
	sender Sender
}

func New(urls []string, sender Sender) *Notifier {
	if sender == nil {
		sender = ShoutrrrSender{}
	}
	return &Notifier{urls: urls, sender: sender}
}

func (n *Notifier) Enabled() bool { return n != nil && len(n.urls) > 0 }

// Notify sends message to every URL and joins the failures.
func (n *Notifier) Notify(message string) error {
	if !n.Enabled() {
		return nil
	}
	var errs []error
	for _, u := range n.urls {
		if err := n.sender.Send(u, message); err != nil {
			errs = append(errs, fmt.Errorf("notify %s: %w", scheme(u), err))
		}
	}
	return errors.Join(errs...)
}

// NotifyAsync is Notify without waiting; failures are logged.
func (n *Notifier) NotifyAsync(message string) {
	if !n.Enabled() {
		return
	}
	go func() {
		if err := n.Notify(message); err != nil {
			log.Printf("notify: %v", err)
		}
	}()
}

// AutoFailMessage is the alert text for an auto-failed calculation.
func AutoFailMessage(res prelim.Result, cfg prelim.Config) string {
	return fmt.Sprintf("Prelim auto-fail (%s): %s unexcused absences of %s classes held, threshold %d.",
		cfg.Variant, prelim.Short(res.UnexcusedAbsences), prelim.Short(res.TotalClassesThatCount), cfg.AutoFailThreshold)
}

// scheme keeps credentials embedded in service URLs out of error messages.
func scheme(u string) string {
	if i := strings.Index(u, "://"); i > 0 {
		return u[:i]
	}
	return "url"
}
