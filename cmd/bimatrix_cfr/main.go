package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/ksyrros/bimatrix"
	"github.com/ksyrros/bimatrix/treegame"
)

func main() {
	rows := flag.Int("rows", 3, "Number of actions of the row player")
	cols := flag.Int("cols", 3, "Number of actions of the column player")
	maxPayoff := flag.Int("max_payoff", 100, "Maximum payoff magnitude")
	zerosum := flag.Bool("zerosum", true, "Generate a zero-sum game")
	seed := flag.Int64("seed", 123, "Random seed")
	nIter := flag.Int("iter", 1000, "Number of CFR iterations to run")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	go http.ListenAndServe("localhost:4124", nil)

	var paymat bimatrix.PayoffMatrix
	var err error
	if *zerosum {
		paymat, err = bimatrix.ZeroSum(rng, *rows, *cols, *maxPayoff)
	} else {
		paymat, err = bimatrix.Uniform(rng, *rows, *cols, *maxPayoff)
	}
	if err != nil {
		glog.Fatal(err)
	}

	game, err := treegame.NewGame(paymat)
	if err != nil {
		glog.Fatal(err)
	}

	total := 0
	start := time.Now()
	tree.Visit(game, func(node cfr.GameTreeNode) {
		total++
	})
	glog.Infof("Visited %d nodes in %v", total, time.Since(start))

	vanillaCFR := cfr.New(cfr.NewPolicyTable(cfr.DiscountParams{}))
	for i := 1; i < *nIter; i++ {
		vanillaCFR.Run(game)
	}
	expectedValue := vanillaCFR.Run(game)
	glog.Infof("Expected value after %d iterations: %v", *nIter, expectedValue)
}
