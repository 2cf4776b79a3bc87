// Package resultio renders net bitmaps for human/file consumption and
// appends them to a results file, following the rendering convention and
// results.txt layout of original_source/python/net_helpers.py's
// stringify_net and find_all.py's result-handling loop.
package resultio
