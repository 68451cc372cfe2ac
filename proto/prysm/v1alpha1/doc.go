// Package eth defines the beacon chain objects handled by the corpus
// generator, together with their SSZ encoding and hash tree roots.
// Vector sizes follow the minimal preset in config/fieldparams.
package eth
