package session

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/pocketauth/internal/common"
)

// decodeAccounts parses the @users record. An absent record is an empty list.
func decodeAccounts(data []byte) ([]Account, error) {
	if len(data) == 0 {
		return []Account{}, nil
	}
	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrMalformedRecord, UsersKey, err)
	}
	if accounts == nil {
		// "null"
		accounts = []Account{}
	}
	return accounts, nil
}

func encodeAccounts(accounts []Account) ([]byte, error) {
	data, err := json.Marshal(accounts)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", UsersKey, err)
	}
	return data, nil
}

// decodeSession parses the @currentUser record. A session without an email
// or a token cannot identify anyone and is rejected as malformed.
func decodeSession(data []byte) (Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("%w: %s: %v", common.ErrMalformedRecord, SessionKey, err)
	}
	if s.Email == "" || s.Token == "" {
		return Session{}, fmt.Errorf("%w: %s: missing email or token", common.ErrMalformedRecord, SessionKey)
	}
	return s, nil
}

func encodeSession(s Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", SessionKey, err)
	}
	return data, nil
}
