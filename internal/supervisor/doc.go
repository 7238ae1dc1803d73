// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package supervisor runs the long-lived Cinegraph services under a suture v4
supervisor tree.

# Overview

Services are grouped into three layers so that failures stay local:

	RootSupervisor ("cinegraph")
	├── DataSupervisor ("data-layer")
	│   └── SnapshotService (if SNAPSHOT_BACKEND != none)
	├── ExportSupervisor ("export-layer")
	│   └── ExportService (if NEO4J_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A service that returns an error is restarted with suture's failure decay and
backoff. Supervisor events are logged through sutureslog, which writes to the
zerolog logger via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"),
		supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddDataService(services.NewSnapshotService(engine, snapCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)

# Shutdown

Canceling the context stops every layer. Each service gets ShutdownTimeout to
return; stragglers are listed by UnstoppedServiceReport.
*/
package supervisor
