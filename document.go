package objecthash

// ObjectHash hashes a tree of Go values (see FromAny) with the default
// Hasher.
func ObjectHash(x interface{}) (Digest, error) {
	return defaultHasher.HashAny(x)
}

// HashJSON hashes a JSON document keeping integers and floats distinct.
func HashJSON(data []byte) (Digest, error) {
	return defaultHasher.HashJSON(data)
}

// CommonJSONHash hashes a JSON document in common JSON form, where every
// number is treated as a float.
func CommonJSONHash(data []byte) (Digest, error) {
	return commonHasher.HashJSON(data)
}

var commonHasher = NewHasher(WithCommonize())

func (h *Hasher) HashAny(x interface{}) (Digest, error) {
	v, err := FromAny(x)
	if err != nil {
		return Digest{}, err
	}
	return h.Hash(v)
}

// HashJSON parses data with ParseJSON and hashes the result. Parse failures
// keep kind Parse and are never reported as hashing errors.
func (h *Hasher) HashJSON(data []byte) (Digest, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return Digest{}, err
	}
	return h.Hash(v)
}

func (h *Hasher) HashCBOR(data []byte) (Digest, error) {
	v, err := ParseCBOR(data)
	if err != nil {
		return Digest{}, err
	}
	return h.Hash(v)
}

func (h *Hasher) HashYAML(data []byte) (Digest, error) {
	v, err := ParseYAML(data)
	if err != nil {
		return Digest{}, err
	}
	return h.Hash(v)
}
