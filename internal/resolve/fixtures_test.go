package resolve

const playerPage = `<!DOCTYPE html>
<html>
<head>
<title>Player</title>
<script>var analytics = {"site": "ondemand", "section": "video"};</script>
<script src="/static/app.js"></script>
<script>
window.__player = {"playerURL": "https://player.test/embed", "releaseUrls": {"htmldesktop": "//link.test/s/abc?mbr=true", "html": "//link.test/s/abc"}};
</script>
</head>
<body><script>{"playerURL": "body", "releaseUrls": {"htmldesktop": "//wrong.test"}}</script></body>
</html>`

const smilWithSubtitles = `<?xml version="1.0" encoding="UTF-8"?>
<smil xmlns="http://www.w3.org/2005/SMIL21/Language">
  <head><meta base="http://cdn.test/"/></head>
  <body>
    <seq>
      <par>
        <video src="http://cdn.test/hls/master.m3u8" title="Show S1 Ep1" abstract="Pilot" />
        <textstream src="http://cdn.test/subs/en.vtt" type="text/vtt" lang="en" />
        <textstream src="http://cdn.test/subs/en.srt" type="text/srt" lang="en" />
      </par>
    </seq>
  </body>
</smil>`

const smilSeqVideo = `<smil xmlns="http://www.w3.org/2005/SMIL21/Language">
  <body>
    <seq>
      <video src="http://cdn.test/movie/master.m3u8" title="A Film" />
    </seq>
  </body>
</smil>`

const masterPlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-STREAM-INF:BANDWIDTH=500,RESOLUTION=640x360
low/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=1200,RESOLUTION=1280x720
high/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=800,RESOLUTION=960x540
mid/index.m3u8
`
