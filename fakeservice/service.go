// Package fakeservice is an in-process stand-in for the names service. It follows the
// documented contract closely enough to run the whole contract test suite without network
// access, and can be told to break specific parts of the contract so that we can check
// that the suite notices.
package fakeservice

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/uinames/names-contract-tests/framework"
)

const (
	ContentTypeJSON = "application/json; charset=utf-8"

	ErrorInvalidGender  = "Invalid gender"
	ErrorUnknownRegion  = "Region or language not found"
	ErrorInvalidAmount  = "Invalid amount"
	ErrorAmountTooLarge = "Amount of requested names exceeds maximum allowed"

	MaxAmount = 500
)

// Options selects contract violations. The zero value is a well-behaved service.
type Options struct {
	// ContentType replaces the Content-Type of every response if set.
	ContentType string
	// DuplicateNames makes every record in a list have the same full name.
	DuplicateNames bool
	// ShortLists makes list responses contain one record fewer than requested.
	ShortLists bool
	// NullSurname returns a JSON null surname in every record.
	NullSurname bool
	// ForceGender, if set, is used as the gender of every record regardless of the request.
	ForceGender string
	// MixedGenders flips the gender of every second record in a list.
	MixedGenders bool
	// MixedRegions moves every second record in a list to another region.
	MixedRegions bool
	// AcceptInvalid ignores unknown gender and region values instead of rejecting them.
	AcceptInvalid bool
	// WrongErrorMessage replaces the text of every error response.
	WrongErrorMessage string
	// ErrorStatus replaces the 400 status of error responses if set.
	ErrorStatus int
	// PlainTextErrors sends error messages as a text/plain body instead of a JSON object.
	PlainTextErrors bool
}

type person struct {
	Name    string  `json:"name"`
	Surname *string `json:"surname"`
	Gender  string  `json:"gender"`
	Region  string  `json:"region"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Service implements http.Handler. It answers requests on any path.
type Service struct {
	options Options
	logger  framework.Logger
	random  *rand.Rand
	lock    sync.Mutex
}

func New(options Options, logger framework.Logger) *Service {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Service{
		options: options,
		logger:  logger,
		random:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.logger.Printf("Fake service received %s %s", req.Method, req.URL)

	q := req.URL.Query()

	gender := q.Get("gender")
	if q.Has("gender") && gender != "male" && gender != "female" {
		if !s.options.AcceptInvalid {
			s.writeError(w, ErrorInvalidGender)
			return
		}
		gender = ""
	}

	region := q.Get("region")
	if q.Has("region") {
		if _, ok := regions[region]; !ok {
			if !s.options.AcceptInvalid {
				s.writeError(w, ErrorUnknownRegion)
				return
			}
			region = ""
		}
	}

	if !q.Has("amount") {
		people := s.generate(gender, region, 1)
		s.writeJSON(w, http.StatusOK, people[0])
		return
	}

	amount, err := strconv.Atoi(q.Get("amount"))
	if err != nil || amount < 1 {
		s.writeError(w, ErrorInvalidAmount)
		return
	}
	if amount > MaxAmount {
		s.writeError(w, ErrorAmountTooLarge)
		return
	}
	people := s.generate(gender, region, amount)
	if s.options.ShortLists {
		people = people[:len(people)-1]
	}
	s.writeJSON(w, http.StatusOK, people)
}

// generate returns count people with distinct full names. If there are not enough distinct
// names for the requested gender and region, names repeat.
func (s *Service) generate(gender, region string, count int) []person {
	s.lock.Lock()
	defer s.lock.Unlock()

	var candidates []person
	for _, regionName := range s.regionsFor(region) {
		names := regions[regionName]
		for _, g := range gendersFor(gender) {
			first := names.male
			if g == "female" {
				first = names.female
			}
			for _, f := range first {
				for _, sn := range names.surnames {
					surname := sn
					candidates = append(candidates, person{Name: f, Surname: &surname, Gender: g, Region: regionName})
				}
			}
		}
	}
	s.random.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	ret := make([]person, 0, count)
	for i := 0; i < count; i++ {
		p := candidates[i%len(candidates)]
		if s.options.DuplicateNames {
			p.Name, p.Surname = candidates[0].Name, candidates[0].Surname
		}
		if s.options.ForceGender != "" {
			p.Gender = s.options.ForceGender
		}
		if s.options.NullSurname {
			p.Surname = nil
		}
		if i%2 == 1 {
			if s.options.MixedGenders {
				p.Gender = otherGender(p.Gender)
			}
			if s.options.MixedRegions {
				p.Region = otherRegion(p.Region)
			}
		}
		ret = append(ret, p)
	}
	return ret
}

func (s *Service) regionsFor(region string) []string {
	if region != "" {
		return []string{region}
	}
	all := regionNamesList()
	sort.Strings(all)
	return all
}

func gendersFor(gender string) []string {
	if gender != "" {
		return []string{gender}
	}
	return []string{"male", "female"}
}

func otherGender(gender string) string {
	if gender == "male" {
		return "female"
	}
	return "male"
}

func otherRegion(region string) string {
	all := regionNamesList()
	sort.Strings(all)
	for _, r := range all {
		if r != region {
			return r
		}
	}
	return region
}

func (s *Service) writeError(w http.ResponseWriter, message string) {
	status := http.StatusBadRequest
	if s.options.ErrorStatus != 0 {
		status = s.options.ErrorStatus
	}
	if s.options.WrongErrorMessage != "" {
		message = s.options.WrongErrorMessage
	}
	if s.options.PlainTextErrors {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(message))
		return
	}
	s.writeJSON(w, status, errorBody{Error: message})
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Printf("Unexpected error encoding response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	contentType := ContentTypeJSON
	if s.options.ContentType != "" {
		contentType = s.options.ContentType
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
