// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package settings provides an in-memory store for a tree of settings
addressed by delimited keys such as `server.http.port`.

It defines a type, [Store], which wraps a nested map[string]any and provides
methods to read values with fallback defaults ([Store.GetOr]), write values
creating intermediate levels as needed ([Store.Set]), toggle features
([Store.Enable] and [Store.Disable]) and deep merge another tree into it
([Store.Merge]).

Values of the tree are either a node (map[string]any), a sequence ([]any)
or a scalar (anything else). Only map[string]any is traversed by keys,
so a map with non-string keys is treated as a scalar.

A Store can be fed by a [Loader], which loads configuration from a source
such as the files of a directory (see package provider/dir).
There is a default Store accessible through top-level functions
(such as [Get] and [Unmarshal]) that call the corresponding Store methods.

A Store is not safe for concurrent use. Callers that share a Store
between goroutines must synchronize access themselves.
*/
package settings
