package lightning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is one entry of getinfo's address or binding list.
type NetAddress struct {
	Type    string `json:"type"`
	Address string `json:"address,omitempty"`
	Port    uint16 `json:"port,omitempty"`
	Socket  string `json:"socket,omitempty"`
}

// Info is the subset of getinfo botimint reads.
type Info struct {
	ID          string       `json:"id"`
	Alias       string       `json:"alias"`
	Network     string       `json:"network"`
	Version     string       `json:"version"`
	BlockHeight uint32       `json:"blockheight"`
	NumPeers    int          `json:"num_peers"`
	Address     []NetAddress `json:"address"`
	Binding     []NetAddress `json:"binding"`
}

// ParseInfo decodes a raw getinfo result.
func ParseInfo(raw json.RawMessage) (*Info, error) {
	var info Info
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode getinfo result: %w", err)
	}
	return &info, nil
}

// ConnectionString returns <id>@<host>:<port> using the first advertised
// address, falling back to the first network binding.
func (i *Info) ConnectionString() (string, error) {
	for _, list := range [][]NetAddress{i.Address, i.Binding} {
		for _, a := range list {
			if a.Address == "" {
				continue
			}
			return i.ID + "@" + net.JoinHostPort(a.Address, strconv.Itoa(int(a.Port))), nil
		}
	}
	return "", errors.New("node advertises no network address")
}

// Getinfo calls getinfo and decodes the result.
func (c *Client) Getinfo(ctx context.Context) (*Info, error) {
	raw, err := c.Call(ctx, GetinfoRequest{}.Method(), GetinfoRequest{})
	if err != nil {
		return nil, err
	}
	return ParseInfo(raw)
}
