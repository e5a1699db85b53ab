package session

import (
	"encoding/json"
	"path/filepath"

	"github.com/coderefine/coderefine/internal/api"
	"github.com/coderefine/coderefine/internal/config"
	perrors "github.com/coderefine/coderefine/internal/errors"
	"github.com/coderefine/coderefine/internal/logger"
)

// Storage keys. These names are shared with other clients of the service.
const (
	KeyUser  = "coderefine_user"
	KeyToken = "coderefine_token"
)

// StorageFile is the file name of the default storage under config.Dir().
const StorageFile = "storage.json"

// DefaultStorage returns the file storage in the coderefine state directory.
func DefaultStorage() (*FileStorage, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, perrors.E(perrors.Op("session.DefaultStorage"), perrors.KindConfig, err)
	}
	return NewFileStorage(filepath.Join(dir, StorageFile)), nil
}

// Load returns the persisted session. ok is false when no user is stored.
// A user value that is not valid JSON is treated as signed out and logged.
func Load(s Storage) (sess api.Session, ok bool, err error) {
	raw, found, err := s.GetItem(KeyUser)
	if err != nil {
		return api.Session{}, false, err
	}
	if !found || raw == "" {
		return api.Session{}, false, nil
	}

	var user api.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Warn("ignoring unreadable stored user: %v", err)
		return api.Session{}, false, nil
	}

	token, _, err := s.GetItem(KeyToken)
	if err != nil {
		return api.Session{}, false, err
	}
	return api.Session{User: user, Token: token}, true, nil
}

// Save persists sess under the fixed keys, replacing any previous session.
func Save(s Storage, sess api.Session) error {
	data, err := json.Marshal(sess.User)
	if err != nil {
		return perrors.E(perrors.Op("session.Save"), perrors.KindIO, err)
	}
	if err := s.SetItem(KeyUser, string(data)); err != nil {
		return err
	}
	return s.SetItem(KeyToken, sess.Token)
}

// Clear removes both keys.
func Clear(s Storage) error {
	if err := s.RemoveItem(KeyUser); err != nil {
		return err
	}
	return s.RemoveItem(KeyToken)
}

// Require loads the session and fails with KindUnauthenticated when nobody
// is signed in. Used by subcommands that need a user.
func Require(s Storage) (api.Session, error) {
	sess, ok, err := Load(s)
	if err != nil {
		return api.Session{}, err
	}
	if !ok {
		return api.Session{}, perrors.NotSignedIn()
	}
	return sess, nil
}
