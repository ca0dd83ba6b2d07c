package catalog

import (
	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/decode"
	"github.com/Kodylow/botimint/internal/lightning"
)

var walletSpecs = []command.Spec{
	{
		Name:        Prefix + "newaddr",
		Description: "Get a new address for on-chain deposits to this node",
		Build: func(b *command.Binder) command.Request {
			return lightning.NewaddrRequest{
				AddressType: command.Default(b, "address_type", addressTypes, lightning.AddressBech32, "Address type"),
			}
		},
	},
	{
		Name:        Prefix + "listfunds",
		Description: "Get funds info",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListfundsRequest{
				Spent: command.Default(b, "spent", decode.BoolType, false, "Include spent outputs"),
			}
		},
	},
	{
		Name:        Prefix + "listtransactions",
		Description: "Get the list of transactions that was stored in the wallet",
		Build: func(*command.Binder) command.Request {
			return lightning.ListtransactionsRequest{}
		},
	},
	{
		Name:        Prefix + "withdraw",
		Description: "Withdraw funds from the internal wallet",
		Build: func(b *command.Binder) command.Request {
			return lightning.WithdrawRequest{
				Destination: command.Required(b, "destination", decode.StringType, "The destination address"),
				Satoshi:     command.Required(b, "amount", decode.AmountOrAllType, "The amount to be withdrawn"),
				Feerate:     command.Optional(b, "feerate", decode.FeerateType, "The feerate"),
				Minconf:     command.Optional(b, "minconf", decode.Uint16Type, "The minimum number of confirmations"),
				Utxos:       command.OptionalSlice(b, "utxos", decode.OutpointType, "The utxos to be used"),
			}
		},
	},
	{
		Name:        Prefix + "txprepare",
		Description: "Prepare to withdraw funds from the internal wallet",
		Build: func(b *command.Binder) command.Request {
			return lightning.TxprepareRequest{
				Outputs: command.Required(b, "outputs", decode.SequenceOf(decode.OutputDescType), "The outputs to prepare the transaction for"),
				Feerate: command.Optional(b, "feerate", decode.FeerateType, "The feerate to use for the transaction"),
				Minconf: command.Optional(b, "minconf", decode.Uint32Type, "The minimum number of confirmations that used outputs should have"),
				Utxos:   command.OptionalSlice(b, "utxos", decode.OutpointType, "The utxos to be used to fund the transaction"),
			}
		},
	},
	{
		Name:        Prefix + "fundpsbt",
		Description: "Populate PSBT inputs from the wallet",
		Build: func(b *command.Binder) command.Request {
			return lightning.FundpsbtRequest{
				Satoshi:              command.Required(b, "satoshi", decode.AmountOrAllType, "The minimum satoshi value of the output(s) needed"),
				Feerate:              command.Required(b, "feerate", decode.FeerateType, "The feerate for the transaction"),
				Startweight:          command.Required(b, "startweight", decode.Uint32Type, "The weight of the transaction before any inputs are added"),
				Minconf:              command.Optional(b, "minconf", decode.Uint32Type, "Minimum confirmations of used outputs"),
				Reserve:              command.Optional(b, "reserve", decode.Uint32Type, "Blocks to reserve the inputs for"),
				Locktime:             command.Optional(b, "locktime", decode.Uint32Type, "The locktime"),
				MinWitnessWeight:     command.Optional(b, "min_witness_weight", decode.Uint32Type, "The min witness weight"),
				ExcessAsChange:       command.Optional(b, "excess_as_change", decode.BoolType, "Whether to use excess as change"),
				Nonwrapped:           command.Optional(b, "nonwrapped", decode.BoolType, "Only use non-wrapped segwit inputs"),
				OpeningAnchorChannel: command.Optional(b, "opening_anchor_channel", decode.BoolType, "Whether to open an anchor channel"),
			}
		},
	},
	{
		Name:        Prefix + "utxopsbt",
		Description: "Populate PSBT inputs from given UTXOs",
		Build: func(b *command.Binder) command.Request {
			return lightning.UtxopsbtRequest{
				Satoshi:              command.Required(b, "satoshi", decode.AmountType, "The amount of satoshi"),
				Feerate:              command.Required(b, "feerate", decode.FeerateType, "The feerate"),
				Startweight:          command.Required(b, "startweight", decode.Uint32Type, "The startweight"),
				Utxos:                command.Required(b, "utxos", outpoints, "The UTXOs to use"),
				Reserve:              command.Optional(b, "reserve", decode.Uint32Type, "The reserve"),
				Reservedok:           command.Optional(b, "reservedok", decode.BoolType, "Whether to reserve"),
				Locktime:             command.Optional(b, "locktime", decode.Uint32Type, "The locktime"),
				MinWitnessWeight:     command.Optional(b, "min_witness_weight", decode.Uint32Type, "The min witness weight"),
				ExcessAsChange:       command.Optional(b, "excess_as_change", decode.BoolType, "Whether to use excess as change"),
				OpeningAnchorChannel: command.Optional(b, "opening_anchor_channel", decode.BoolType, "Whether to open an anchor channel"),
			}
		},
	},
	{
		Name:        Prefix + "signpsbt",
		Description: "Sign a PSBT",
		Build: func(b *command.Binder) command.Request {
			return lightning.SignpsbtRequest{
				Psbt:     command.Required(b, "psbt", decode.StringType, "The PSBT value"),
				Signonly: command.OptionalSlice(b, "signonly", decode.Uint32Type, "An optional array of input numbers to sign"),
			}
		},
	},
	{
		Name:        Prefix + "sendpsbt",
		Description: "Finalize, extract and send a partially signed bitcoin transaction (PSBT)",
		Build: func(b *command.Binder) command.Request {
			return lightning.SendpsbtRequest{
				Psbt:    command.Required(b, "psbt", decode.StringType, "A string that represents psbt value"),
				Reserve: command.Optional(b, "reserve", decode.BoolType, "Whether to reserve the inputs"),
			}
		},
	},
}
