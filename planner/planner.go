// Package planner composes parsing, spanning-tree construction and
// formatting into a single call.
package planner

import (
	"io"

	"github.com/katalvlaran/netplan/edge"
	"github.com/katalvlaran/netplan/mst"
	"github.com/katalvlaran/netplan/parser"
	"github.com/katalvlaran/netplan/report"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Plan parses links from r and computes the cheapest network over every site
// they mention.
func Plan(r io.Reader, opts ...mst.Option) (mst.Result, error) {
	edges, err := parser.Parse(r)
	if err != nil {
		return mst.Result{}, err
	}

	return plan(edges, opts...)
}

// PlanFile reads links from path and returns the formatted network.
func PlanFile(path string, opts ...mst.Option) (string, error) {
	log.Debugf("Reading links from %s", path)
	edges, err := parser.ParseFile(path)
	if err != nil {
		return "", err
	}
	res, err := plan(edges, opts...)
	if err != nil {
		return "", errors.WithMessagef(err, "planning %s", path)
	}

	return report.Format(res), nil
}

func plan(edges []edge.Edge, opts ...mst.Option) (mst.Result, error) {
	sites := edge.Sites(edges)
	log.WithFields(log.Fields{
		"links": len(edges),
		"sites": len(sites),
	}).Debug("Parsed candidate links")

	res, err := mst.Compute(sites, edges, opts...)
	if err != nil {
		return mst.Result{}, errors.Wrap(err, "computing network")
	}

	entry := log.WithFields(log.Fields{
		"selected":   len(res.Edges),
		"total":      res.Total,
		"components": res.Components,
	})
	if !res.Connected() {
		entry.Warn("Sites do not form a single network")
	} else {
		entry.Debug("Network computed")
	}

	return res, nil
}
