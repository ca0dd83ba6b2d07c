package decode

import "github.com/Kodylow/botimint/internal/lightning"

var SendpayRoute = Record("route hop", func(f *Fields) lightning.SendpayRoute {
	return lightning.SendpayRoute{
		AmountMsat: Field(f, "amount_msat", Amount),
		ID:         Field(f, "id", PublicKey),
		Delay:      Field(f, "delay", Uint16),
		Channel:    Field(f, "channel", ShortChannelID),
	}
})

var FirstHop = Record("first hop", func(f *Fields) lightning.FirstHop {
	return lightning.FirstHop{
		ID:         Field(f, "id", PublicKey),
		AmountMsat: Field(f, "amount_msat", Amount),
		Delay:      Field(f, "delay", Uint16),
	}
})

var RouteHop = Record("route hint hop", func(f *Fields) lightning.RouteHop {
	return lightning.RouteHop{
		ID:              Field(f, "pubkey", PublicKey),
		ShortChannelID:  Field(f, "short_channel_id", ShortChannelID),
		FeeBase:         Field(f, "fee_base_msat", Amount),
		FeeProportional: Field(f, "fee_proportional_millionths", Uint32),
		CLTVExpiryDelta: Field(f, "cltv_expiry_delta", Uint16),
	}
})

var TlvEntry = Record("tlv entry", func(f *Fields) lightning.TlvEntry {
	return lightning.TlvEntry{
		Type:  Field(f, "typ", Uint64),
		Value: Field(f, "value", Hex),
	}
})

var OnionHop = Record("onion hop", func(f *Fields) lightning.OnionHop {
	return lightning.OnionHop{
		PubKey:  Field(f, "pubkey", PublicKey),
		Payload: Field(f, "payload", String),
	}
})

// RouteHint decodes an array of route hint hops.
func RouteHint(v any) (lightning.RouteHint, error) {
	hops, err := Sequence(RouteHop)(v)
	return lightning.RouteHint(hops), err
}

// RouteHintList decodes an array of route hints.
func RouteHintList(v any) (lightning.RouteHintList, error) {
	hints, err := Sequence(RouteHint)(v)
	return lightning.RouteHintList(hints), err
}

// TlvStream decodes an array of {"typ", "value"} entries.
func TlvStream(v any) (lightning.TlvStream, error) {
	entries, err := Sequence(TlvEntry)(v)
	return lightning.TlvStream(entries), err
}
