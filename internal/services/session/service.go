package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"clipcrypt/internal/crypto"
	"clipcrypt/internal/domain"
	"clipcrypt/internal/protocol/blockcodec"
	"clipcrypt/internal/protocol/frame"
	"clipcrypt/internal/util/memzero"
)

const (
	keyPrompt     = "key> "
	messagePrompt = "> "

	hintPeerKey = "Paste the recipient's public key exactly as shared, or press Enter to take it from the clipboard."
	hintPaste   = "Paste the key into the console instead."
	hintRead    = "There was an error reading your input. Please try again."

	// maxReadFailures ends the message loop when input keeps failing.
	maxReadFailures = 5
)

// Service performs the key exchange and then the message loop.
//
// A Service runs a single session; the key pair and session key live only in
// Run's frame and are never logged.
type Service struct {
	in   domain.LineSource
	out  domain.Printer
	clip domain.Clipboard
	log  zerolog.Logger
}

// New constructs a session Service over the given console and clipboard.
func New(
	in domain.LineSource,
	out domain.Printer,
	clip domain.Clipboard,
	log zerolog.Logger,
) *Service {
	return &Service{
		in:   in,
		out:  out,
		clip: clip,
		log:  log,
	}
}

// Run executes the session until the user interrupts it or input ends.
//
// Steps:
//  1. Generate the ephemeral key pair, show and copy the public key.
//  2. Read lines until one holds a valid peer public key.
//  3. Agree on the shared secret and derive the block cipher key.
//  4. Encrypt or decrypt each following line.
func (s *Service) Run(ctx context.Context) error {
	kp, err := crypto.GenerateX448()
	if err != nil {
		return fmt.Errorf("generate key pair: %w", err)
	}
	defer memzero.Zero(kp.Private[:])

	if err := s.announce(kp.Public); err != nil {
		return err
	}

	peer, err := s.awaitPeerKey(ctx, kp.Public)
	if errors.Is(err, domain.ErrInterrupted) {
		s.log.Debug().Msg("interrupted during handshake")
		return nil
	}
	if err != nil {
		return err
	}

	pipeline, err := s.establish(kp.Private, peer)
	if err != nil {
		return err
	}
	return s.converse(ctx, pipeline)
}

// announce prints our public key and places it on the clipboard.
func (s *Service) announce(pub domain.X448Public) error {
	text := crypto.EncodePublicKey(pub)

	s.out.Info("Your public key is displayed below and has been copied to your clipboard.")
	s.out.Info("Share it with the intended recipient of your encrypted messages.")
	s.out.Result(text)
	s.out.Info("Fingerprint: %s", crypto.Fingerprint(pub))

	if err := s.clip.Copy(text); err != nil {
		return fmt.Errorf("copy public key: %w", err)
	}
	return nil
}

// awaitPeerKey re-prompts until a usable peer key arrives. An empty line
// takes the key from the clipboard.
func (s *Service) awaitPeerKey(ctx context.Context, own domain.X448Public) (domain.X448Public, error) {
	s.out.Info("\nPaste the recipient's public key here to begin communication.")
	for {
		line, err := s.in.ReadLine(ctx, keyPrompt)
		if errors.Is(err, domain.ErrInterrupted) {
			return domain.X448Public{}, err
		}
		if err != nil {
			return domain.X448Public{}, fmt.Errorf("read peer public key: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			line, err = s.clip.Paste()
			if err != nil {
				s.out.Problem(err, hintPaste)
				continue
			}
		}

		peer, err := crypto.ParsePublicKey(line)
		if err == nil && peer == own {
			err = fmt.Errorf("%w: this is your own public key", crypto.ErrInvalidPublicKey)
		}
		if err != nil {
			s.log.Debug().Err(err).Msg("peer public key rejected")
			s.out.Problem(err, hintPeerKey)
			continue
		}
		return peer, nil
	}
}

// establish derives the session key and builds the message pipeline. The
// shared secret and raw key are wiped once the cipher is keyed.
func (s *Service) establish(priv domain.X448Private, peer domain.X448Public) (domain.MessagePipeline, error) {
	shared, err := crypto.Agree(priv, peer)
	if err != nil {
		return nil, fmt.Errorf("establish session key: %w", err)
	}
	key := crypto.DeriveKey(shared)
	memzero.Zero(shared[:])

	codec, err := blockcodec.New(key)
	memzero.Zero(key[:])
	if err != nil {
		return nil, err
	}

	fp := crypto.Fingerprint(peer)
	s.log.Info().Str("peer", fp.String()).Msg("session key established")

	s.out.Info("\nEncryption has been established with %s.", fp)
	s.out.Info("Write messages here to encrypt them. Encrypted messages are copied to the clipboard.")
	s.out.Info("Paste encrypted messages here to decrypt them.")
	s.out.Info("Use CTRL-C to quit.\n")
	return frame.New(codec), nil
}

// converse runs the message loop. Read and pipeline errors are reported and
// skipped; only a run of maxReadFailures read errors in a row is fatal.
func (s *Service) converse(ctx context.Context, p domain.MessagePipeline) error {
	failures := 0
	for {
		line, err := s.in.ReadLine(ctx, messagePrompt)
		if errors.Is(err, domain.ErrInterrupted) || errors.Is(err, io.EOF) {
			s.log.Debug().Err(err).Msg("session ended")
			return nil
		}
		if err != nil {
			failures++
			if failures >= maxReadFailures {
				return fmt.Errorf("read message: %w", err)
			}
			s.log.Warn().Err(err).Int("failures", failures).Msg("input read failed")
			s.out.Problem(err, hintRead)
			continue
		}
		failures = 0

		res, err := p.Process(line)
		if err != nil {
			s.log.Debug().Err(err).Msg("frame rejected")
			s.out.Problem(err, hintFor(err))
			continue
		}

		s.out.Result(res.Text)
		if res.Direction == domain.Encrypted {
			if err := s.clip.Copy(res.Text); err != nil {
				return fmt.Errorf("copy frame: %w", err)
			}
		}
		s.log.Debug().Stringer("direction", res.Direction).Int("chars", len(res.Text)).Msg("message processed")
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, frame.ErrInvalidPlaintextEncoding):
		return "This probably means that the public keys were not exchanged correctly."
	case errors.Is(err, frame.ErrUnalignedCiphertext):
		return "It does not contain an integer number of blocks; was it cut short while copying?"
	case errors.Is(err, frame.ErrMalformedFrame):
		return "Paste the whole line, starting with " + frame.Prefix + "."
	default:
		return ""
	}
}
