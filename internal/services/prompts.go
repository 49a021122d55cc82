package services

import (
	"context"
	"encoding/json"
	"fmt"
)

const signupPromptFormat = `
The current user database is: %s.
The following are the user credentials: username=%s, password=%s.
Please validate the username and password.
- Check if the username already exists.
- Ensure the password has a 3 digit number (e.g. 123).
If the credentials are valid, say 'valid'. Otherwise, provide suggestions or errors.
`

const loginPromptFormat = `
The current user database is: %s.
The following are the login credentials: username=%s, password=%s.
Please validate if these credentials match any existing user records.
If they match, say 'valid'. If not, say 'invalid' and provide feedback.
`

func renderSignupPrompt(database, username, password string) string {
	return fmt.Sprintf(signupPromptFormat, database, username, password)
}

func renderLoginPrompt(database, username, password string) string {
	return fmt.Sprintf(loginPromptFormat, database, username, password)
}

// renderDatabase renders the store as {"user":{"password":"<hash>"}}, keys sorted.
func renderDatabase(ctx context.Context, creds CredentialStore) (string, error) {
	snapshot, err := creds.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("snapshot credentials: %w", err)
	}

	view := make(map[string]map[string]string, len(snapshot))
	for username, hash := range snapshot {
		view[username] = map[string]string{"password": hash}
	}
	data, err := json.Marshal(view)
	if err != nil {
		return "", fmt.Errorf("render credentials: %w", err)
	}
	return string(data), nil
}
