package session

// Chaves idênticas às usadas pelo app no storage do dispositivo.
const (
	TokenKey     = "userToken"
	AddressKey   = "userAddress"
	AddressIDKey = "userAddressId"
)

// Store guarda o token de sessão e o ponteiro de endereço selecionado.
// Endereço ausente significa "usar a localização atual do dispositivo".
type Store interface {
	Token() (string, error)
	SetToken(token string) error
	ClearToken() error

	Address() (label string, id string, err error)
	SetAddress(label, id string) error
	ClearAddress() error
}
