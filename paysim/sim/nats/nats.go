package nats

import (
	"context"
	"time"

	"lnticket/paysim/sim/config"
	"lnticket/pkg/nats/natsdomain"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

func Init(config *config.Config) *natsdomain.Ns {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	nc, err := nats.Connect(config.Nats.Servers)
	if err != nil {
		panic(err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		panic(err)
	}

	// the api also creates this stream at boot, whoever comes first wins
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     natsdomain.StreamPayments,
		Subjects: natsdomain.SubjectsJetStream[:],
	})
	if err != nil {
		panic(err)
	}

	return &natsdomain.Ns{Nc: nc, Js: js}
}
