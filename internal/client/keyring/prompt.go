package keyring

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// prompt shows a Secret Service prompt and waits for its Completed signal.
// It returns the prompt result, whose type depends on the call that asked
// for the prompt. Cancelling ctx dismisses the prompt.
func (s *SecretService) prompt(ctx context.Context, p dbus.ObjectPath) (dbus.Variant, error) {
	if p == noPrompt || p == "" {
		return dbus.MakeVariant(""), nil
	}

	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(p),
		dbus.WithMatchInterface(promptIface),
		dbus.WithMatchMember("Completed"),
	}
	if err := s.conn.AddMatchSignalContext(ctx, match...); err != nil {
		return dbus.Variant{}, fmt.Errorf("watch prompt: %w", err)
	}
	defer func() { _ = s.conn.RemoveMatchSignalContext(context.Background(), match...) }()

	signals := make(chan *dbus.Signal, 8)
	s.conn.Signal(signals)
	defer s.conn.RemoveSignal(signals)

	if err := s.object(p).CallWithContext(ctx, promptIface+".Prompt", 0, "").Err; err != nil {
		return dbus.Variant{}, mapError(err)
	}

	for {
		select {
		case sig, ok := <-signals:
			if !ok {
				return dbus.Variant{}, fmt.Errorf("%w: connection closed while prompting", ErrUnavailable)
			}
			if sig.Path != p || sig.Name != promptIface+".Completed" {
				continue
			}
			var dismissed bool
			var result dbus.Variant
			if err := dbus.Store(sig.Body, &dismissed, &result); err != nil {
				return dbus.Variant{}, fmt.Errorf("prompt result: %w", err)
			}
			if dismissed {
				return dbus.Variant{}, ErrDismissed
			}
			return result, nil
		case <-ctx.Done():
			_ = s.object(p).Call(promptIface+".Dismiss", 0).Err
			return dbus.Variant{}, ctx.Err()
		}
	}
}
