// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	syncpkg "github.com/tomtom215/ballotsync/internal/sync"
)

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ballotsync",
		Short:         "Sync election reference data from a spreadsheet to the GraphQL backend",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		a.batchCommand(syncpkg.OperationCandidates, (*syncpkg.Syncer).SyncCandidates,
			"Update candidates and their people with ids in [fromId, toId]",
			`For every candidate row whose id is in the inclusive range, send
UpdateCandidate (fields plus a full replacement of the candidate's tags),
then UpdatePerson for the person the row references. A candidate whose
person is not in the people table is still updated; the person is skipped.`),
		a.batchCommand(syncpkg.OperationConstituencies, (*syncpkg.Syncer).SyncConstituencies,
			"Update constituency descriptions with ids in [fromId, toId]",
			`For every constituency row whose id is in the inclusive range, send
UpdateConstituency with the row's description.`),
	)

	return root
}

func (a *app) batchCommand(operation string, run batchFunc, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   operation + " <fromId> <toId>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromID, toID, err := parseRange(args)
			if err != nil {
				fmt.Fprintf(a.stderr, "Error: %v\n\n", err)
				_ = cmd.Usage()
				return &exitError{code: exitInvalid, err: err}
			}
			return a.runBatch(cmd.Context(), operation, run, fromID, toID)
		},
	}
}

// parseRange parses the two positional ids as base-10 integers.
func parseRange(args []string) (fromID, toID int, err error) {
	fromID, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("fromId must be an integer, got %q", args[0])
	}
	toID, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("toId must be an integer, got %q", args[1])
	}
	return fromID, toID, nil
}
