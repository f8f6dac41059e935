package bitcoin

// Network identifies which chain keys and addresses belong to.
type Network uint32

const (
	InvalidNet Network = 0
	MainNet    Network = 0xe8f3e1e3
	TestNet    Network = 0xf4f3e5f4
)

// NetworkFromString returns the network id for the specified name.
func NetworkFromString(name string) Network {
	switch name {
	case "mainnet":
		return MainNet
	case "testnet":
		return TestNet
	}

	return InvalidNet
}

func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	}

	return "invalid"
}
