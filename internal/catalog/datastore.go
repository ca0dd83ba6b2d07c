package catalog

import (
	"github.com/Kodylow/botimint/internal/command"
	"github.com/Kodylow/botimint/internal/decode"
	"github.com/Kodylow/botimint/internal/lightning"
)

var datastoreSpecs = []command.Spec{
	{
		Name:        Prefix + "datastore",
		Description: "Store data in the Core Lightning database",
		Build: func(b *command.Binder) command.Request {
			return lightning.DatastoreRequest{
				Key:        command.Required(b, "key", keyPath, "The key hierarchy for the data"),
				String:     command.Optional(b, "string", decode.StringType, "The string data to store"),
				Hex:        command.Optional(b, "hex", decode.StringType, "The hex data to store"),
				Mode:       command.Optional(b, "mode", datastoreModes, "The mode for storing the data"),
				Generation: command.Optional(b, "generation", decode.Uint64Type, "The generation for atomic updates"),
			}
		},
	},
	{
		Name:        Prefix + "listdatastore",
		Description: "Fetch data from the Core Lightning database",
		Build: func(b *command.Binder) command.Request {
			return lightning.ListdatastoreRequest{
				Key: command.OptionalSlice(b, "key", decode.StringType, "The key hierarchy for the data"),
			}
		},
	},
	{
		Name:        Prefix + "deldatastore",
		Description: "Remove data from the Core Lightning database",
		Build: func(b *command.Binder) command.Request {
			return lightning.DeldatastoreRequest{
				Key:        command.Required(b, "key", keyPath, "The key hierarchy for the data"),
				Generation: command.Optional(b, "generation", decode.Uint64Type, "The generation for atomic updates"),
			}
		},
	},
}
