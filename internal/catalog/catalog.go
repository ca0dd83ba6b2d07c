// Package catalog declares every command botimint publishes.
package catalog

import (
	"context"

	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/decode"
	"github.com/Kodylow/botimint/internal/lightning"
)

// Prefix is prepended to every node command name.
const Prefix = "cln_"

// PingReply is the answer to the local liveness command.
const PingReply = "Hey, I'm alive!"

var (
	addressTypes    = decode.EnumOf("address type", lightning.AddressBech32, lightning.AddressP2TR, lightning.AddressAll)
	datastoreModes  = decode.EnumOf("datastore mode", lightning.DatastoreMustCreate, lightning.DatastoreMustReplace, lightning.DatastoreCreateOrReplace, lightning.DatastoreMustAppend, lightning.DatastoreCreateOrAppend)
	invoiceStatuses = decode.EnumOf("invoice status", lightning.InvoicePaid, lightning.InvoiceExpired, lightning.InvoiceUnpaid)
	invoiceIndexes  = decode.EnumOf("invoice index", lightning.IndexCreated, lightning.IndexUpdated)
	payStatuses     = decode.EnumOf("payment status", lightning.PayPending, lightning.PayComplete, lightning.PayFailed)
	forwardStatuses = decode.EnumOf("forward status", lightning.ForwardOffered, lightning.ForwardSettled, lightning.ForwardLocalFailed, lightning.ForwardFailed)
	logLevels       = decode.EnumOf("log level", lightning.LogIO, lightning.LogDebug, lightning.LogInfo, lightning.LogUnusual)
	feerateStyles   = decode.EnumOf("feerate style", lightning.PerKb, lightning.PerKw)

	sendpayRoutes = decode.SequenceOf(decode.RecordOf("route hop", decode.SendpayRoute))
	onionHops     = decode.SequenceOf(decode.RecordOf("onion hop", decode.OnionHop))
	outpoints     = decode.SequenceOf(decode.OutpointType)
	keyPath       = decode.SequenceOf(decode.StringType)
)

// Specs returns the full command catalog.
func Specs() []command.Spec {
	specs := []command.Spec{ping}
	for _, group := range [][]command.Spec{nodeSpecs, paymentSpecs, invoiceSpecs, channelSpecs, walletSpecs, datastoreSpecs} {
		specs = append(specs, group...)
	}
	return specs
}

// NewRegistry builds a registry holding the full catalog.
func NewRegistry() (*command.Registry, error) {
	return command.NewRegistry(Specs()...)
}

var ping = command.Spec{
	Name:        "ping",
	Description: "Check that the bot is alive",
	Reply: func(context.Context) string {
		return PingReply
	},
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
