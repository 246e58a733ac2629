// Package sorter walks the input tree and moves every cut-list file to the
// destination the routing rules assign it.
//
// Folders under the root are looked up in the product's category table,
// each file's dimension is read, and the resolved destination (or the
// default folder) receives the file. Folders and files are processed in name
// order. With ContinueOnError unset the first failure stops the batch;
// otherwise failures are collected in the Summary and the batch goes on.
package sorter
