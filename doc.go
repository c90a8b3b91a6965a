// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rthybrid is the overall repository for a Hindmarsh-Rose 1984 model neuron
built to be driven from a hard real-time hybrid (living + model) neuron loop,
where the host calls the model once per fixed tick period and the model must
always return a finite state within its time budget.

This top-level of the repository has no functional code -- everything is organized
into the following sub-packages:

* hr: the neuron itself: state, parameters and derivative function, the step-size
policy that maps burst duration and tick period onto an integration step, the keyed
configuration / input / output interface used by the host, and Process, which
advances the model by one tick.

* integ: the fixed-step integrators (RK4, Euler) that hr.Process uses, behind the
Stepper interface so tests and hosts can substitute their own.

* hrlog: records per-tick neuron state into an etable.Table, optionally streaming
it as CSV, and summarizes the membrane potential trace.

* hrconfig: TOML run configuration, applied to a neuron by configuration name or
alias.

* hrstore: persistence of run records, in memory or in sqlite (build with -tags sqlite).

* examples/hrsim: a command-line host that runs the tick loop, measures compute time
per tick against the period, and logs, plots and stores the run.
*/
package rthybrid
