package lightning

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
)

// SendpayRoute is one hop of an explicit sendpay route.
type SendpayRoute struct {
	AmountMsat Amount         `json:"amount_msat"`
	ID         PublicKey      `json:"id"`
	Delay      uint16         `json:"delay"`
	Channel    ShortChannelID `json:"channel"`
}

// FirstHop tells sendonion where to hand the onion.
type FirstHop struct {
	ID         PublicKey `json:"id"`
	AmountMsat Amount    `json:"amount_msat"`
	Delay      uint16    `json:"delay"`
}

// RouteHop is one private hop of a route hint.
type RouteHop struct {
	ID              PublicKey      `json:"id"`
	ShortChannelID  ShortChannelID `json:"short_channel_id"`
	FeeBase         Amount         `json:"fee_base_msat"`
	FeeProportional uint32         `json:"fee_proportional_millionths"`
	CLTVExpiryDelta uint16         `json:"cltv_expiry_delta"`
}

type RouteHint []RouteHop

type RouteHintList []RouteHint

// TlvEntry is one type-length-value record.
type TlvEntry struct {
	Type  uint64
	Value []byte
}

// TlvStream is serialized as an object keyed by the decimal record type.
type TlvStream []TlvEntry

func (s TlvStream) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(s))
	for _, e := range s {
		m[strconv.FormatUint(e.Type, 10)] = hex.EncodeToString(e.Value)
	}
	return json.Marshal(m)
}

// OnionHop is one hop payload for createonion.
type OnionHop struct {
	PubKey  PublicKey `json:"pubkey"`
	Payload string    `json:"payload"`
}

type AddressType string

const (
	AddressBech32 AddressType = "bech32"
	AddressP2TR   AddressType = "p2tr"
	AddressAll    AddressType = "all"
)

type DatastoreMode string

const (
	DatastoreMustCreate      DatastoreMode = "must-create"
	DatastoreMustReplace     DatastoreMode = "must-replace"
	DatastoreCreateOrReplace DatastoreMode = "create-or-replace"
	DatastoreMustAppend      DatastoreMode = "must-append"
	DatastoreCreateOrAppend  DatastoreMode = "create-or-append"
)

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceExpired InvoiceStatus = "expired"
	InvoiceUnpaid  InvoiceStatus = "unpaid"
)

type InvoiceIndex string

const (
	IndexCreated InvoiceIndex = "created"
	IndexUpdated InvoiceIndex = "updated"
)

// PayStatus filters listpays and listsendpays.
type PayStatus string

const (
	PayPending  PayStatus = "pending"
	PayComplete PayStatus = "complete"
	PayFailed   PayStatus = "failed"
)

type ForwardStatus string

const (
	ForwardOffered     ForwardStatus = "offered"
	ForwardSettled     ForwardStatus = "settled"
	ForwardLocalFailed ForwardStatus = "local_failed"
	ForwardFailed      ForwardStatus = "failed"
)

// LogLevel selects how much of the peer log listpeers includes.
type LogLevel string

const (
	LogIO      LogLevel = "io"
	LogDebug   LogLevel = "debug"
	LogInfo    LogLevel = "info"
	LogUnusual LogLevel = "unusual"
)
