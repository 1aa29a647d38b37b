// Package main provides a demo CLI that builds, randomizes and runs a
// feed-forward network.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/mlp/matrix"
	"github.com/born-ml/mlp/nn"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("mlp %s\n", version)
		return
	}

	defaults := nn.DefaultConfig()
	inputSize := flag.Int("input", defaults.InputSize, "Number of input features")
	hidden := flag.String("hidden", joinSizes(defaults.HiddenSizes), "Comma-separated hidden layer sizes")
	outputSize := flag.Int("output", defaults.OutputSize, "Number of output features")
	seed := flag.Uint64("seed", 1, "Seed for parameter randomization")
	activation := flag.String("activation", "relu", "Activation: relu, sigmoid, tanh, identity")
	flag.Parse()

	hiddenSizes, err := parseSizes(*hidden)
	if err != nil {
		log.Fatalf("Invalid -hidden: %v", err)
	}
	act, _, err := nn.ActivationByName(*activation)
	if err != nil {
		log.Fatalf("Invalid -activation: %v", err)
	}

	net, err := nn.NewNetworkFromConfig(nn.Config{
		InputSize:   *inputSize,
		HiddenSizes: hiddenSizes,
		OutputSize:  *outputSize,
	})
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}
	net.Randomize(matrix.NewRand(*seed))
	log.Printf("Network %d-%v-%d, %d parameters", net.InputSize(), hiddenSizes, net.OutputSize(), net.NumParameters())

	output, err := net.Propagate(matrix.New(1, net.InputSize()), act)
	if err != nil {
		log.Fatalf("Propagation failed: %v", err)
	}
	fmt.Println(output)
}

// parseSizes parses "16,16" into []int{16, 16}.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("layer size %q: %w", p, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, n := range sizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
