package biwenger

// Wire types for the platform API. Only the fields the suite consumes
// are declared, everything else in the responses is ignored.

type loginResponse struct {
	Token string `json:"token"`
}

type accountResponse struct {
	Data struct {
		Leagues []struct {
			ID   int64 `json:"id"`
			User struct {
				ID int64 `json:"id"`
			} `json:"user"`
		} `json:"leagues"`
	} `json:"data"`
}

// Standing is one manager in the league standings, which doubles as the
// league's user directory.
type Standing struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type leagueResponse struct {
	Data struct {
		Standings []Standing `json:"standings"`
	} `json:"data"`
}

// BoardMessage is one raw board post as the API returns it. Date is
// epoch seconds and may be absent, in which case it decodes to zero.
type BoardMessage struct {
	ID     int64 `json:"id"`
	Date   int64 `json:"date"`
	Author struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"author"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type boardResponse struct {
	Data []BoardMessage `json:"data"`
}

type competitionResponse struct {
	Data struct {
		Players map[string]competitionPlayer `json:"players"`
	} `json:"data"`
}

type competitionPlayer struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Position     int    `json:"position"`
	Price        int64  `json:"price"`
	AltPositions []int  `json:"altPositions"`
}

type squadResponse struct {
	Data struct {
		Players []struct {
			ID    int64 `json:"id"`
			Owner struct {
				Clause int64 `json:"clause"`
			} `json:"owner"`
		} `json:"players"`
	} `json:"data"`
}

// MarketSale is one player currently on sale in the league market.
type MarketSale struct {
	Player struct {
		ID int64 `json:"id"`
	} `json:"player"`
	Price int64 `json:"price"`
}

type marketResponse struct {
	Data struct {
		Sales []MarketSale `json:"sales"`
	} `json:"data"`
}
