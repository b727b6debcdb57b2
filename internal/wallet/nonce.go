package wallet

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"
)

var TimeNow = time.Now

var (
	ErrNonceNotFound error = errors.New("no nonce issued for session")
	ErrNonceExpired  error = errors.New("nonce expired")
)

const nonceBytes = 16

type issuedNonce struct {
	value    string
	issuedAt time.Time
}

// NonceIssuer keeps the current challenge nonce of every session. Issuing a
// new nonce replaces the previous one.
type NonceIssuer struct {
	ttl    time.Duration
	mu     sync.Mutex
	nonces map[string]issuedNonce
}

func NewNonceIssuer(ttl time.Duration) *NonceIssuer {
	return &NonceIssuer{
		ttl:    ttl,
		nonces: make(map[string]issuedNonce),
	}
}

func (n *NonceIssuer) Issue(sessionID string) (string, error) {
	buf := make([]byte, nonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	value := hex.EncodeToString(buf)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.nonces[sessionID] = issuedNonce{value: value, issuedAt: TimeNow()}

	return value, nil
}

// Current returns the nonce the session must sign.
func (n *NonceIssuer) Current(sessionID string) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	issued, ok := n.nonces[sessionID]
	if !ok {
		return "", ErrNonceNotFound
	}
	if n.expired(issued) {
		delete(n.nonces, sessionID)
		return "", ErrNonceExpired
	}

	return issued.value, nil
}

// Consume drops the session nonce if it is still the given value. It reports
// whether this call was the one that dropped it.
func (n *NonceIssuer) Consume(sessionID, nonce string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	issued, ok := n.nonces[sessionID]
	if !ok || issued.value != nonce {
		return false
	}
	delete(n.nonces, sessionID)

	return true
}

// Purge removes expired nonces and returns how many were dropped.
func (n *NonceIssuer) Purge() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	purged := 0
	for session, issued := range n.nonces {
		if n.expired(issued) {
			delete(n.nonces, session)
			purged++
		}
	}
	return purged
}

func (n *NonceIssuer) expired(issued issuedNonce) bool {
	return n.ttl > 0 && TimeNow().Sub(issued.issuedAt) > n.ttl
}
