package cli

import "context"

const termsText = `Terms of Service

VoidVault is an anonymous space. By using it you agree to:
  1. Post nothing illegal, and nothing that targets or harasses a person.
  2. Accept that posts expire and may disappear at any time.
  3. Accept that moderation may hide or remove content and accounts
     without notice.
  4. Keep your recovery key safe. There is no email reset; a lost key
     and password means a lost account.`

const privacyText = `Privacy Policy

VoidVault stores the minimum it needs to run:
  - your username and password hash, never an email or phone number;
  - your posts, replies, messages and follow relations;
  - a hash of your recovery key.

There is no ad tracking and no profile enrichment. Content expires on a
schedule and deleted accounts are removed together with their content.`

// Terms prints the terms of service.
func (a *App) Terms(ctx context.Context) error {
	printlnFn(termsText)
	return nil
}

// Privacy prints the privacy policy.
func (a *App) Privacy(ctx context.Context) error {
	printlnFn(privacyText)
	return nil
}
