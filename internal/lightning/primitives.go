package lightning

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// PublicKey is a compressed secp256k1 point.
type PublicKey [33]byte

// ParsePublicKey reads 66 hex characters with a 02 or 03 prefix.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	if err := decodeHexFixed(pk[:], s); err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key: %w", err)
	}
	if pk[0] != 0x02 && pk[0] != 0x03 {
		return PublicKey{}, fmt.Errorf("invalid public key: prefix %02x is not 02 or 03", pk[0])
	}
	return pk, nil
}

func (pk PublicKey) String() string { return hex.EncodeToString(pk[:]) }

func (pk PublicKey) MarshalJSON() ([]byte, error) { return json.Marshal(pk.String()) }

// Hash is a sha256 digest such as a payment hash or txid.
type Hash [32]byte

func ParseHash(s string) (Hash, error) {
	var h Hash
	if err := decodeHexFixed(h[:], s); err != nil {
		return Hash{}, fmt.Errorf("invalid hash: %w", err)
	}
	return h, nil
}

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

func (h Hash) MarshalJSON() ([]byte, error) { return json.Marshal(h.String()) }

// Secret is a 32-byte secret (payment secret, onion session key).
type Secret [32]byte

func ParseSecret(s string) (Secret, error) {
	var sec Secret
	if err := decodeHexFixed(sec[:], s); err != nil {
		return Secret{}, fmt.Errorf("invalid secret: %w", err)
	}
	return sec, nil
}

func (s Secret) String() string { return hex.EncodeToString(s[:]) }

func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func decodeHexFixed(dst []byte, s string) error {
	if len(s) != hex.EncodedLen(len(dst)) {
		return fmt.Errorf("want %d hex characters, got %d", hex.EncodedLen(len(dst)), len(s))
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return err
	}
	return nil
}

// ShortChannelID locates a channel funding output as block x tx x output.
type ShortChannelID struct {
	Block  uint32
	Tx     uint32
	Output uint16
}

// ParseShortChannelID reads the "<block>x<tx>x<output>" form.
func ParseShortChannelID(s string) (ShortChannelID, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 3 {
		return ShortChannelID{}, fmt.Errorf("invalid short channel id %q: want <block>x<tx>x<output>", s)
	}
	block, err := strconv.ParseUint(parts[0], 10, 24)
	if err != nil {
		return ShortChannelID{}, fmt.Errorf("invalid short channel id %q: block: %w", s, err)
	}
	tx, err := strconv.ParseUint(parts[1], 10, 24)
	if err != nil {
		return ShortChannelID{}, fmt.Errorf("invalid short channel id %q: tx: %w", s, err)
	}
	out, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil {
		return ShortChannelID{}, fmt.Errorf("invalid short channel id %q: output: %w", s, err)
	}
	return ShortChannelID{Block: uint32(block), Tx: uint32(tx), Output: uint16(out)}, nil
}

func (c ShortChannelID) String() string {
	return fmt.Sprintf("%dx%dx%d", c.Block, c.Tx, c.Output)
}

func (c ShortChannelID) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// Outpoint references a transaction output.
type Outpoint struct {
	TxID  Hash
	Index uint32
}

// ParseOutpoint reads "<txid>:<index>".
func ParseOutpoint(s string) (Outpoint, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Outpoint{}, fmt.Errorf("invalid outpoint %q: want <txid>:<index>", s)
	}
	txid, err := ParseHash(parts[0])
	if err != nil {
		return Outpoint{}, fmt.Errorf("invalid outpoint %q: %w", s, err)
	}
	idx, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Outpoint{}, fmt.Errorf("invalid outpoint %q: index: %w", s, err)
	}
	return Outpoint{TxID: txid, Index: uint32(idx)}, nil
}

func (o Outpoint) String() string { return fmt.Sprintf("%s:%d", o.TxID, o.Index) }

func (o Outpoint) MarshalJSON() ([]byte, error) { return json.Marshal(o.String()) }

// OutputDesc pays Amount to Address.
type OutputDesc struct {
	Address string
	Amount  Amount
}

// ParseOutputDesc reads "<address>:<amount>".
func ParseOutputDesc(s string) (OutputDesc, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" {
		return OutputDesc{}, fmt.Errorf("invalid output %q: want <address>:<amount>", s)
	}
	amt, err := ParseAmount(parts[1])
	if err != nil {
		return OutputDesc{}, fmt.Errorf("invalid output %q: %w", s, err)
	}
	return OutputDesc{Address: parts[0], Amount: amt}, nil
}

// MarshalJSON writes the single-entry object form {"<address>": "<n>msat"}.
func (o OutputDesc) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Amount{o.Address: o.Amount})
}

// ConnectionString addresses a peer as <id>@<host>[:<port>].
type ConnectionString struct {
	ID   PublicKey
	Host string
	Port uint16
}

func ParseConnectionString(s string) (ConnectionString, error) {
	id, addr, ok := strings.Cut(s, "@")
	if !ok || addr == "" {
		return ConnectionString{}, fmt.Errorf("invalid connection string %q: want <id>@<host>[:<port>]", s)
	}
	pk, err := ParsePublicKey(id)
	if err != nil {
		return ConnectionString{}, fmt.Errorf("invalid connection string %q: %w", s, err)
	}
	cs := ConnectionString{ID: pk, Host: addr}
	if host, port, err := net.SplitHostPort(addr); err == nil {
		p, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return ConnectionString{}, fmt.Errorf("invalid connection string %q: port: %w", s, err)
		}
		cs.Host, cs.Port = host, uint16(p)
	}
	return cs, nil
}

func (c ConnectionString) String() string {
	if c.Port == 0 {
		return c.ID.String() + "@" + c.Host
	}
	return c.ID.String() + "@" + net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
