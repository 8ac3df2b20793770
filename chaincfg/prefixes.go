package chaincfg

// AddressPrefixes are the version bytes prepended before base58 encoding
// addresses and keys.
type AddressPrefixes struct {
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

var (
	// extended keys use the bitcoin xpub/xprv magics on every network
	hdPublicKeyID  = [4]byte{0x04, 0x88, 0xb2, 0x1e}
	hdPrivateKeyID = [4]byte{0x04, 0x88, 0xad, 0xe4}
)

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any network of the registry.  It is up to the
// caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	for _, kind := range AllNetworkKinds() {
		p := r.profile(kind)
		if p.Prefixes.PubKeyHashAddrID == id {
			return true
		}
	}

	return false
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any network of the registry.
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	for _, kind := range AllNetworkKinds() {
		p := r.profile(kind)
		if p.Prefixes.ScriptHashAddrID == id {
			return true
		}
	}

	return false
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not known to any network, ErrUnknownHDKeyID is returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)

	for _, kind := range AllNetworkKinds() {
		p := r.profile(kind)
		if p.Prefixes.HDPrivateKeyID == key {
			pub := p.Prefixes.HDPublicKeyID
			return pub[:], nil
		}
	}

	return nil, ErrUnknownHDKeyID
}
