package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/draft_cipher_mock.go -package=mock

// DraftCipher encrypts draft text before it is written to the local cache or
// sent to the draft service. The passphrase is the user id, so a different
// user on the same machine can not read another user's drafts.
//
// Output is an opaque base64 string. Decrypt must be the inverse of Encrypt
// for the same passphrase and reject anything else with [ErrDecrypt].
type DraftCipher interface {
	Encrypt(plaintext, passphrase string) (string, error)
	Decrypt(ciphertext, passphrase string) (string, error)
}
