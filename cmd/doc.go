// Package cmd contains command-line utilities for training, applying and evaluating naive Bayes image classifiers.
// It also contains supporting code for these utilities, such as loading configuration and reporting fatal errors.
package cmd
