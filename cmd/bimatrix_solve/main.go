package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"

	"github.com/golang/glog"

	"github.com/ksyrros/bimatrix"
)

func main() {
	rows := flag.Int("rows", 3, "Number of actions of the row player")
	cols := flag.Int("cols", 3, "Number of actions of the column player")
	maxPayoff := flag.Int("max_payoff", 100, "Maximum payoff magnitude")
	zerosum := flag.Bool("zerosum", false, "Generate a zero-sum game")
	seed := flag.Int64("seed", 123, "Random seed")
	ibrSteps := flag.Int("ibr_steps", 0, "IBR step budget (0 = rows*cols + 2)")
	fpIter := flag.Int("fp_iter", bimatrix.DefaultMaxIterations,
		"Fictitious play iteration budget")
	fpEpsilon := flag.Float64("fp_epsilon", bimatrix.DefaultEpsilon,
		"Fictitious play convergence tolerance")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	go http.ListenAndServe("localhost:4123", nil)

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

	for i, row := range paymat {
		glog.Infof("row %d: %v", i, row)
	}

	pure, err := bimatrix.PureEquilibria(paymat)
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("%d pure Nash equilibria: %v", len(pure), pure)

	profile, err := bimatrix.IBR(paymat, rng, *ibrSteps)
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("Iterative best response terminated at %v", profile)

	rowDist, colDist, err := bimatrix.FictitiousPlay(paymat, rng, *fpIter, *fpEpsilon)
	if err != nil {
		glog.Fatal(err)
	}
	glog.Infof("Fictitious play row strategy: %v", rowDist)
	glog.Infof("Fictitious play column strategy: %v", colDist)
}
