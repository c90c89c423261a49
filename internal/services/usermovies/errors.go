package usermovies

import "errors"

var ErrMovieNotFound = errors.New("movie not found")
