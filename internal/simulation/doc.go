// Package simulation implements a Monte Carlo order-statistic estimator
// with optional variance-reduction techniques.
//
// A run generates a batch of experiment vectors drawn from a uniform
// distribution, reduces each experiment (or antithetic pair) to a single
// order statistic (the satellite value) and aggregates mean, sample
// standard deviation and standard error over those values.
//
// The pipeline is strictly linear: generate, select, aggregate. An Engine
// executes it exactly once.
//
// Basic Usage:
//
//	engine, err := simulation.NewEngine(simulation.DefaultConfig(), simulation.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := engine.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("mean: %.2f\n", result.Metrics.Mean)
//	fmt.Printf("stddev: %.2f\n", result.Metrics.StdDev)
//
// Variance Reduction:
//
// Three generation strategies are available: plain uniform sampling,
// antithetic variates (experiments drawn in negatively correlated pairs
// whose order statistics are averaged), and Latin Hypercube Sampling
// (one sample per stratum per dimension). See Technique.
package simulation
