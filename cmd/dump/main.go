package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

type storageRecord struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "LE hash of the FreeSpeech contract to dump")
	outPath := flag.String("out", "", "Output file (stdout if empty)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing contract hash")
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	out := os.Stdout
	if *outPath != "" {
		out, err = os.OpenFile(*outPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
		if err != nil {
			log.Fatal(fmt.Errorf("create output file: %w", err))
		}
		defer out.Close()
	}

	err = _dump(*neoRPCEndpoint, h, out)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("contract %s storage is successfully dumped\n", h.StringLE())
}

func _dump(neoBlockchainRPCEndpoint string, contract util.Uint160, out *os.File) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	enc := json.NewEncoder(out)

	return b.iterateContractStorage(contract, func(key, value []byte) error {
		err := enc.Encode(storageRecord{Key: key, Value: value})
		if err != nil {
			return fmt.Errorf("encode storage record: %w", err)
		}
		return nil
	})
}
