package remote

import "go.mongodb.org/mongo-driver/mongo/options"

func upsert() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}
