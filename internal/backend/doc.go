// Package backend builds catalog.Catalog values on top of the Apache Iceberg
// Go client.
//
// Every variant (REST, Glue, Hive metastore) ends up in the same adapter,
// which converts identifiers, exposes loaded tables as catalog.Table and
// normalises client errors into the catalog error taxonomy. Variants differ
// only in how the underlying client is constructed; the Registry maps a
// configured catalog type to the factory that constructs it.
//
// A catalog is opened exactly once per process:
//
//	reg := backend.NewDefaultRegistry()
//	cat, err := reg.Open(ctx, cfg)
package backend
