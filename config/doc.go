// Package config holds the tunables of a copy run that are not per-invocation.
//
// Values come from Default(), then an optional YAML file, then command line
// flags applied by the caller. A file looks like:
//
//	base_url: https://api.meraki.com/api/v1
//	src_tag: copy_client_names_src
//	dst_tag: copy_client_names_dst
//	timespan: 744h
//	per_page: 1000
//	device_policy: Normal
//	timeout: 1m
//	http_tries: 1
//	log_dir: /var/log/copy-client-names
//	log_level: info
//
// The API key and organization id are never read from the file.
package config
